package domain

// MonthlyRevenue é uma linha da série mensal realizado x meta
type MonthlyRevenue struct {
	Month              Month   `json:"month"`
	Realized           float64 `json:"realized"`
	Target             float64 `json:"target"`
	Percentage         float64 `json:"percentage"`
	CumulativeRealized float64 `json:"cumulative_realized"`
	CumulativeTarget   float64 `json:"cumulative_target"`
}

type QuarterlyRevenue struct {
	Quarter    int     `json:"quarter"`
	Months     []Month `json:"months"`
	Realized   float64 `json:"realized"`
	Target     float64 `json:"target"`
	Percentage float64 `json:"percentage"`
}

// RevenueSummary é a visão anual de faturamento contra metas
type RevenueSummary struct {
	Year          int                `json:"year"`
	Monthly       []MonthlyRevenue   `json:"monthly"`
	Quarterly     []QuarterlyRevenue `json:"quarterly"`
	TotalRealized float64            `json:"total_realized"`
	TotalTarget   float64            `json:"total_target"`
	AnnualTarget  float64            `json:"annual_target"`
	Attainment    float64            `json:"attainment"`
}

type SellerPerformance struct {
	Seller     SellerID `json:"seller"`
	Name       string   `json:"name"`
	Realized   float64  `json:"realized"`
	Target     float64  `json:"target"`
	Attainment float64  `json:"attainment"`
}

// SellerPeriodPerformance é o desempenho dos vendedores em um mês ou, com Month nil, no ano
type SellerPeriodPerformance struct {
	Year    int                 `json:"year"`
	Month   *Month              `json:"month,omitempty"`
	Sellers []SellerPerformance `json:"sellers"`
	Best    SellerPerformance   `json:"best"`
}

type ClientStatus string

const (
	ClientStatusStar     ClientStatus = "STAR"
	ClientStatusStable   ClientStatus = "STABLE"
	ClientStatusDecrease ClientStatus = "DECREASE"
	ClientStatusChurn    ClientStatus = "CHURN"
)

type ClientPerformance struct {
	ClientID        string       `json:"client_id"`
	Name            string       `json:"name"`
	Current         float64      `json:"current"`
	Prior           float64      `json:"prior"`
	Growth          float64      `json:"growth"`
	Status          ClientStatus `json:"status"`
	CumulativeShare float64      `json:"cumulative_share"`
}

// ClientPortfolio é a carteira T20 ordenada pelo ano atual, com a curva de Pareto
type ClientPortfolio struct {
	CurrentYear  int                  `json:"current_year"`
	PriorYear    int                  `json:"prior_year"`
	Clients      []ClientPerformance  `json:"clients"`
	GrandTotal   float64              `json:"grand_total"`
	StatusCounts map[ClientStatus]int `json:"status_counts"`
}

type ClientOpportunity struct {
	ClientID          string  `json:"client_id"`
	Name              string  `json:"name"`
	HistoricalAverage float64 `json:"historical_average"`
	YearValue         float64 `json:"year_value"`
	Idle              bool    `json:"idle"`
	OpportunityCost   float64 `json:"opportunity_cost"`
}

// OpportunityCostSummary é o custo de oportunidade dos clientes parados no ano
type OpportunityCostSummary struct {
	Year      int                 `json:"year"`
	Clients   []ClientOpportunity `json:"clients"`
	IdleCount int                 `json:"idle_count"`
	Total     float64             `json:"total"`
}

type MonthlyEfficiency struct {
	Month          Month   `json:"month"`
	Realized       float64 `json:"realized"`
	Logistics      float64 `json:"logistics"`
	Goods          float64 `json:"goods"`
	TotalCost      float64 `json:"total_cost"`
	Margin         float64 `json:"margin"`
	LogisticsRatio float64 `json:"logistics_ratio"`
	GoodsRatio     float64 `json:"goods_ratio"`
	Warning        bool    `json:"warning"`
}

// OperationalEfficiency é a visão de margem e custos operacionais do ano
type OperationalEfficiency struct {
	Year           int                 `json:"year"`
	Monthly        []MonthlyEfficiency `json:"monthly"`
	TotalRealized  float64             `json:"total_realized"`
	TotalLogistics float64             `json:"total_logistics"`
	TotalGoods     float64             `json:"total_goods"`
	TotalCost      float64             `json:"total_cost"`
	TotalMargin    float64             `json:"total_margin"`
	LogisticsRatio float64             `json:"logistics_ratio"`
	GoodsRatio     float64             `json:"goods_ratio"`
	WarningMonths  []Month             `json:"warning_months"`
}

// Dashboard reúne todas as visões calculadas a partir de uma mesma leitura do snapshot
type Dashboard struct {
	Year          int                      `json:"year"`
	Month         Month                    `json:"month"`
	Revenue       *RevenueSummary          `json:"revenue"`
	Sellers       *SellerPeriodPerformance `json:"sellers"`
	AnnualSellers *SellerPeriodPerformance `json:"annual_sellers"`
	Ranking       []SellerRankingItem      `json:"ranking"`
	Portfolio     *ClientPortfolio         `json:"portfolio"`
	Opportunity   *OpportunityCostSummary  `json:"opportunity"`
	Efficiency    *OperationalEfficiency   `json:"efficiency"`
}
