// Package advising monta o contexto textual do painel e consulta o serviço de recomendações
package advising

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-performance-api/infrastructure/integrator/advisory"
	"github.com/vfg2006/sales-performance-api/internal/domain"
	"github.com/vfg2006/sales-performance-api/pkg/utils"
)

const topClientsInContext = 3

var ErrAdvisoryDisabled = errors.New("advisory service disabled")

type Adviser interface {
	Advise(ctx context.Context, year int, month domain.Month) (*domain.Advice, error)
}

// DashboardProvider é quem calcula o painel usado como contexto
type DashboardProvider interface {
	Dashboard(year int, month domain.Month) (*domain.Dashboard, error)
}

type Service struct {
	dashboards DashboardProvider
	client     advisory.Client
}

// NewService recebe client nil quando o serviço de recomendações está desligado
func NewService(dashboards DashboardProvider, client advisory.Client) *Service {
	return &Service{
		dashboards: dashboards,
		client:     client,
	}
}

func (s *Service) Advise(ctx context.Context, year int, month domain.Month) (*domain.Advice, error) {
	if s.client == nil {
		return nil, ErrAdvisoryDisabled
	}

	dashboard, err := s.dashboards.Dashboard(year, month)
	if err != nil {
		return nil, err
	}

	prompt := BuildContext(dashboard)

	advice, err := s.client.Advise(ctx, prompt)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"year":  year,
			"month": month.Key(),
		}).Error("advising: erro ao consultar serviço de recomendações")
		return nil, err
	}

	advice.Context = prompt
	return advice, nil
}

// BuildContext resume o painel em poucas linhas: período, atingimento, principais clientes e alertas
func BuildContext(d *domain.Dashboard) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Período: %s/%d.\n", d.Month.Name(), d.Year)

	if d.Revenue != nil {
		fmt.Fprintf(&b, "Atingimento da meta anual: %.2f%%.\n", utils.RoundWithTwoDecimalPlace(d.Revenue.Attainment))
		if d.Month.Valid() && len(d.Revenue.Monthly) == domain.MonthsPerYear {
			row := d.Revenue.Monthly[d.Month.Index()]
			fmt.Fprintf(&b, "Atingimento do mês: %.2f%% (realizado %.2f de %.2f).\n",
				utils.RoundWithTwoDecimalPlace(row.Percentage), row.Realized, row.Target)
		}
	}

	if d.Sellers != nil && d.Sellers.Best.Realized > 0 {
		fmt.Fprintf(&b, "Melhor vendedor do mês: %s.\n", d.Sellers.Best.Name)
	}

	if d.Portfolio != nil {
		names := make([]string, 0, topClientsInContext)
		for _, client := range d.Portfolio.Clients {
			if len(names) == topClientsInContext || client.Current <= 0 {
				break
			}
			names = append(names, client.Name)
		}
		if len(names) > 0 {
			fmt.Fprintf(&b, "Principais clientes: %s.\n", strings.Join(names, ", "))
		} else {
			b.WriteString("Principais clientes: nenhum cliente com faturamento no ano.\n")
		}
	}

	if flags := riskFlags(d); len(flags) > 0 {
		fmt.Fprintf(&b, "Alertas: %s.\n", strings.Join(flags, "; "))
	}

	b.WriteString("Escreva uma análise curta em português com até três recomendações práticas.")

	return b.String()
}

func riskFlags(d *domain.Dashboard) []string {
	flags := make([]string, 0)

	if d.Portfolio != nil {
		if churn := d.Portfolio.StatusCounts[domain.ClientStatusChurn]; churn > 0 {
			flags = append(flags, fmt.Sprintf("%d clientes deixaram de comprar", churn))
		}
	}

	if d.Opportunity != nil && d.Opportunity.IdleCount > 0 {
		flags = append(flags, fmt.Sprintf("%d clientes parados com custo de oportunidade de %.2f",
			d.Opportunity.IdleCount, utils.RoundWithTwoDecimalPlace(d.Opportunity.Total)))
	}

	if d.Efficiency != nil && len(d.Efficiency.WarningMonths) > 0 {
		months := make([]string, 0, len(d.Efficiency.WarningMonths))
		for _, month := range d.Efficiency.WarningMonths {
			months = append(months, month.Key())
		}
		flags = append(flags, "custos acima do limite em "+strings.Join(months, ", "))
	}

	return flags
}
