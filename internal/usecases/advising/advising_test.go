package advising

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-performance-api/infrastructure/integrator/advisory/mocks"
	"github.com/vfg2006/sales-performance-api/internal/domain"
	"go.uber.org/mock/gomock"
)

type fakeDashboards struct {
	dashboard *domain.Dashboard
	err       error
}

func (f fakeDashboards) Dashboard(int, domain.Month) (*domain.Dashboard, error) {
	return f.dashboard, f.err
}

func sampleDashboard() *domain.Dashboard {
	monthly := make([]domain.MonthlyRevenue, domain.MonthsPerYear)
	monthly[1] = domain.MonthlyRevenue{Month: domain.February, Realized: 28000, Target: 56000, Percentage: 50}

	return &domain.Dashboard{
		Year:    2026,
		Month:   domain.February,
		Revenue: &domain.RevenueSummary{Attainment: 12.3456, Monthly: monthly},
		Sellers: &domain.SellerPeriodPerformance{
			Best: domain.SellerPerformance{Seller: domain.SellerCarlos, Name: "Carlos", Realized: 28000},
		},
		Portfolio: &domain.ClientPortfolio{
			Clients: []domain.ClientPerformance{
				{Name: "Alfa", Current: 900},
				{Name: "Beta", Current: 500},
				{Name: "Gama", Current: 300},
				{Name: "Delta", Current: 100},
			},
			StatusCounts: map[domain.ClientStatus]int{domain.ClientStatusChurn: 2},
		},
		Opportunity: &domain.OpportunityCostSummary{IdleCount: 3, Total: 1234.567},
		Efficiency:  &domain.OperationalEfficiency{WarningMonths: []domain.Month{domain.January, domain.February}},
	}
}

func TestBuildContext(t *testing.T) {
	text := BuildContext(sampleDashboard())

	assert.Contains(t, text, "Período: Fevereiro/2026.")
	assert.Contains(t, text, "Atingimento da meta anual: 12.35%.")
	assert.Contains(t, text, "Atingimento do mês: 50.00%")
	assert.Contains(t, text, "Melhor vendedor do mês: Carlos.")
	assert.Contains(t, text, "Principais clientes: Alfa, Beta, Gama.")
	assert.NotContains(t, text, "Delta")
	assert.Contains(t, text, "2 clientes deixaram de comprar")
	assert.Contains(t, text, "3 clientes parados com custo de oportunidade de 1234.57")
	assert.Contains(t, text, "custos acima do limite em jan, fev")
}

func TestBuildContext_SemFaturamento(t *testing.T) {
	d := sampleDashboard()
	d.Portfolio.Clients = []domain.ClientPerformance{{Name: "Alfa", Current: 0}}
	d.Portfolio.StatusCounts = map[domain.ClientStatus]int{}
	d.Opportunity.IdleCount = 0
	d.Efficiency.WarningMonths = nil

	text := BuildContext(d)

	assert.Contains(t, text, "nenhum cliente com faturamento no ano")
	assert.NotContains(t, text, "Alertas:")
}

func TestService_Advise(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("Serviço desligado", func(t *testing.T) {
		service := NewService(fakeDashboards{dashboard: sampleDashboard()}, nil)

		_, err := service.Advise(context.Background(), 2026, domain.February)
		assert.ErrorIs(t, err, ErrAdvisoryDisabled)
	})

	t.Run("Repassa texto e fontes sem alteração", func(t *testing.T) {
		client := mocks.NewMockClient(ctrl)
		client.EXPECT().
			Advise(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, prompt string) (*domain.Advice, error) {
				assert.Contains(t, prompt, "Fevereiro/2026")
				return &domain.Advice{
					Text:    "Foque nos clientes parados.",
					Sources: []domain.AdviceSource{{Title: "Fonte", URI: "https://exemplo.com"}},
				}, nil
			})

		service := NewService(fakeDashboards{dashboard: sampleDashboard()}, client)
		advice, err := service.Advise(context.Background(), 2026, domain.February)

		require.NoError(t, err)
		assert.Equal(t, "Foque nos clientes parados.", advice.Text)
		assert.Equal(t, "https://exemplo.com", advice.Sources[0].URI)
		assert.Contains(t, advice.Context, "Principais clientes")
	})

	t.Run("Falha do serviço externo é retornada", func(t *testing.T) {
		client := mocks.NewMockClient(ctrl)
		client.EXPECT().Advise(gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))

		service := NewService(fakeDashboards{dashboard: sampleDashboard()}, client)
		_, err := service.Advise(context.Background(), 2026, domain.February)

		assert.EqualError(t, err, "timeout")
	})

	t.Run("Erro ao montar o painel", func(t *testing.T) {
		client := mocks.NewMockClient(ctrl)
		service := NewService(fakeDashboards{err: errors.New("invalid year")}, client)

		_, err := service.Advise(context.Background(), 2019, domain.February)
		assert.Error(t, err)
	})
}
