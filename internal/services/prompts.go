package services

import (
	"fmt"
	"strings"
)

const datasetColumnsContext = `- day (DATE): data da transação (formato YYYY-MM-DD)
- entity (TEXT): 'PJ' ou 'PF' (Pessoa Jurídica ou Física)
- product (TEXT): 'pix', 'pos', 'tap', 'link', 'bank_slip'
- price_tier (TEXT): 'normal', 'intermediary', 'aggressive', 'domination'
- anticipation_method (TEXT): 'Pix', 'D1Anticipation', 'Bank Slip', 'D0/Nitro'
- nitro_or_d0 (TEXT): 'D0', 'Nitro', 'Nitro Anticipation' (muitos nulos)
- payment_method (TEXT): 'credit', 'debit', 'uninformed'
- installments (INTEGER): número de parcelas (1-12)
- amount_transacted (REAL): valor transacionado em BRL
- quantity_transactions (INTEGER): quantidade de transações
- quantity_of_merchants (INTEGER): quantidade de comerciantes

DEFINIÇÕES DE KPIs:
- TPV (Total Payment Volume): SUM(amount_transacted)
- Ticket Médio: amount_transacted / quantity_transactions`

func buildSQLPrompt(question string) string {
	var b strings.Builder
	b.WriteString("Você é um assistente que gera queries SQL para análise de dados.\n\n")
	b.WriteString("TABELA DISPONÍVEL: transactions\n\nCOLUNAS:\n")
	b.WriteString(datasetColumnsContext)
	b.WriteString("\n\nIMPORTANTE: Use SQLite, então funções como EXTRACT não existem. Use strftime() para datas.\n\n")
	fmt.Fprintf(&b, "PERGUNTA DO USUÁRIO: %s\n\n", question)
	b.WriteString(`INSTRUÇÕES:
1. Gere uma query SQL válida para SQLite
2. A query deve ser eficiente e retornar resultado claro
3. Use aliases descritivos nas colunas
4. Para agregações, use GROUP BY apropriado
5. Ordene resultados de forma lógica (DESC para valores grandes)
6. Retorne APENAS o SQL, sem explicações antes ou depois
7. Não use markdown, não use ` + "```sql" + `, apenas o SQL puro

EXEMPLO DE RESPOSTA:
SELECT product, SUM(amount_transacted) as tpv
FROM transactions
GROUP BY product
ORDER BY tpv DESC
LIMIT 1;

AGORA GERE O SQL PARA A PERGUNTA DO USUÁRIO:`)
	return b.String()
}

func buildTabularPrompt(question string) string {
	var b strings.Builder
	b.WriteString("Você é um assistente de análise de dados. Os dados de transações têm as colunas:\n\n")
	b.WriteString(datasetColumnsContext)
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "PERGUNTA DO USUÁRIO: %s\n\n", question)
	b.WriteString(`INSTRUÇÕES:
1. Descreva o cálculo como um objeto JSON com os campos:
   group_by (lista de colunas), measure (amount_transacted, quantity_transactions,
   quantity_of_merchants ou avg_ticket), aggregation (sum, mean, count, min ou max),
   filters (objeto coluna -> valor), day_from e day_to (YYYY-MM-DD), sort (asc ou desc), limit
2. Retorne APENAS o JSON, sem explicações antes ou depois
3. Não use markdown

EXEMPLO DE RESPOSTA:
{"group_by": ["product"], "measure": "amount_transacted", "aggregation": "sum", "sort": "desc", "limit": 1}

AGORA GERE O JSON PARA A PERGUNTA DO USUÁRIO:`)
	return b.String()
}

func buildInterpretationPrompt(question, result string) string {
	var b strings.Builder
	b.WriteString("Você é um analista de dados especializado em business intelligence.\n\n")
	fmt.Fprintf(&b, "PERGUNTA DO USUÁRIO: %s\n\n", question)
	fmt.Fprintf(&b, "RESULTADO DA ANÁLISE:\n%s\n\n", result)
	b.WriteString(`INSTRUÇÕES:
1. Analise o resultado e responda a pergunta de forma clara e objetiva
2. Inclua insights e padrões encontrados
3. Use números formatados (ex: R$ 8,14 bilhões ao invés de 8.140541e+09)
4. Se for análise temporal, identifique tendências
5. Se houver comparações, destaque diferenças principais
6. Termine com recomendações práticas se relevante
7. Responda em português brasileiro
8. Seja conciso mas informativo (máximo 150 palavras)

RESPOSTA:`)
	return b.String()
}
