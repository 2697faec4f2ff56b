package llm_mocks

//go:generate mockgen -source=../generator.go -destination=llm_mocks.go -package=llm_mocks
