package reference

import "github.com/vfg2006/sales-performance-api/internal/domain"

// yearly cria um histórico anual na ordem 2021..2025
func yearly(values ...float64) domain.YearlyHistory {
	history := make(domain.YearlyHistory, len(values))
	for i, value := range values {
		history[domain.FirstHistoricalYear+i] = value
	}
	return history
}

// TopClients retorna a carteira T20 na ordem histórica de faturamento.
// Alguns clientes só têm o total agregado dos cinco anos.
func TopClients() []domain.TopClient {
	return []domain.TopClient{
		{ID: "c01", Name: "Distribuidora Horizonte", History: yearly(410000, 452000, 498000, 521000, 560000)},
		{ID: "c02", Name: "Atacadão Serra Azul", History: yearly(380000, 366000, 402000, 455000, 470000)},
		{ID: "c03", Name: "Rede Bom Preço", History: yearly(300000, 342000, 355000, 362000, 318000)},
		{ID: "c04", Name: "Comercial Vale Verde", History: domain.AggregatedHistory(1650000)},
		{ID: "c05", Name: "Mercantil São Jorge", History: yearly(260000, 281000, 295000, 310000, 0)},
		{ID: "c06", Name: "Grupo Litoral", History: yearly(210000, 236000, 249000, 287000, 352000)},
		{ID: "c07", Name: "Supermercados Aurora", History: domain.AggregatedHistory(1180000)},
		{ID: "c08", Name: "Casa Nova Utilidades", History: yearly(198000, 204000, 221000, 229000, 176000)},
		{ID: "c09", Name: "Empório Central", History: yearly(150000, 172000, 188000, 190000, 201000)},
		{ID: "c10", Name: "Farmácias Vida Plena", History: yearly(140000, 151000, 163000, 180000, 226000)},
		{ID: "c11", Name: "Papelaria Estrela", History: domain.AggregatedHistory(760000)},
		{ID: "c12", Name: "Construmais Materiais", History: yearly(132000, 128000, 141000, 150000, 149000)},
		{ID: "c13", Name: "Hortifruti Campo Belo", History: yearly(118000, 125000, 131000, 138000, 97000)},
		{ID: "c14", Name: "Pet Center Amigo Fiel", History: yearly(90000, 104000, 118000, 133000, 161000)},
		{ID: "c15", Name: "Auto Peças Rota Sul", History: domain.AggregatedHistory(540000)},
		{ID: "c16", Name: "Loja do Lar", History: yearly(98000, 101000, 99000, 112000, 108000)},
		{ID: "c17", Name: "Drogaria Popular", History: yearly(84000, 92000, 97000, 101000, 0)},
		{ID: "c18", Name: "Eletro Ponto Certo", History: yearly(76000, 81000, 88000, 94000, 119000)},
		{ID: "c19", Name: "Bazar Três Irmãos", History: domain.AggregatedHistory(390000)},
		{ID: "c20", Name: "Mini Mercado Esquina", History: yearly(61000, 66000, 70000, 74000, 71000)},
	}
}

// ClientsByID indexa a carteira pelo ID do cliente
func ClientsByID(clients []domain.TopClient) map[string]domain.TopClient {
	byID := make(map[string]domain.TopClient, len(clients))
	for _, client := range clients {
		byID[client.ID] = client
	}
	return byID
}
