// Package exporter gera a planilha XLSX do painel
package exporter

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
	"github.com/vfg2006/sales-performance-api/internal/domain"
	"github.com/vfg2006/sales-performance-api/pkg/utils"
)

const (
	SheetRevenue     = "Faturamento"
	SheetSellers     = "Vendedores"
	SheetClients     = "Clientes"
	SheetOperational = "Operacional"
)

type Exporter interface {
	ExportDashboard(w io.Writer, dashboard *domain.Dashboard) error
}

type XLSXExporter struct{}

func NewXLSXExporter() *XLSXExporter {
	return &XLSXExporter{}
}

// ExportDashboard escreve uma aba por visão do painel
func (e *XLSXExporter) ExportDashboard(w io.Writer, dashboard *domain.Dashboard) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetRevenue); err != nil {
		return fmt.Errorf("exporter: erro ao renomear aba: %w", err)
	}
	for _, sheet := range []string{SheetSellers, SheetClients, SheetOperational} {
		if _, err := f.NewSheet(sheet); err != nil {
			return fmt.Errorf("exporter: erro ao criar aba %s: %w", sheet, err)
		}
	}

	header, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#1F4E78"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("exporter: erro ao criar estilo: %w", err)
	}

	sheets := []struct {
		name    string
		columns []string
		rows    [][]any
	}{
		{
			name:    SheetRevenue,
			columns: []string{"Mês", "Realizado", "Meta", "%", "Acumulado realizado", "Acumulado meta"},
			rows:    revenueRows(dashboard.Revenue),
		},
		{
			name:    SheetSellers,
			columns: []string{"Vendedor", "Realizado no mês", "Meta do mês", "% mês", "Realizado no ano", "Meta do ano", "% ano", "Posição"},
			rows:    sellerRows(dashboard),
		},
		{
			name:    SheetClients,
			columns: []string{"Cliente", "Ano atual", "Ano anterior", "Crescimento %", "Status", "Pareto %", "Parado", "Custo de oportunidade"},
			rows:    clientRows(dashboard),
		},
		{
			name:    SheetOperational,
			columns: []string{"Mês", "Realizado", "Logística", "Mercadoria", "Custo total", "Margem", "Logística %", "Mercadoria %", "Alerta"},
			rows:    operationalRows(dashboard.Efficiency),
		},
	}

	for _, sheet := range sheets {
		if err := writeSheet(f, sheet.name, sheet.columns, sheet.rows, header); err != nil {
			return err
		}
	}

	f.SetActiveSheet(0)

	if err := f.Write(w); err != nil {
		return fmt.Errorf("exporter: erro ao gravar planilha: %w", err)
	}
	return nil
}

func writeSheet(f *excelize.File, sheet string, columns []string, rows [][]any, headerStyle int) error {
	headerRow := make([]any, len(columns))
	for i, column := range columns {
		headerRow[i] = column
	}
	if err := f.SetSheetRow(sheet, "A1", &headerRow); err != nil {
		return fmt.Errorf("exporter: erro ao escrever cabeçalho de %s: %w", sheet, err)
	}

	lastCol, err := excelize.CoordinatesToCellName(len(columns), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", lastCol, headerStyle); err != nil {
		return fmt.Errorf("exporter: erro ao aplicar estilo em %s: %w", sheet, err)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("exporter: erro ao escrever linha %d de %s: %w", i+2, sheet, err)
		}
	}

	endCol, _ := excelize.ColumnNumberToName(len(columns))
	return f.SetColWidth(sheet, "A", endCol, 18)
}

func revenueRows(summary *domain.RevenueSummary) [][]any {
	if summary == nil {
		return nil
	}

	rows := make([][]any, 0, len(summary.Monthly)+1)
	for _, m := range summary.Monthly {
		rows = append(rows, []any{
			m.Month.Name(), m.Realized, m.Target, round(m.Percentage), m.CumulativeRealized, m.CumulativeTarget,
		})
	}
	rows = append(rows, []any{"Total", summary.TotalRealized, summary.TotalTarget, round(summary.Attainment)})

	return rows
}

func sellerRows(d *domain.Dashboard) [][]any {
	if d.Sellers == nil || d.AnnualSellers == nil {
		return nil
	}

	positions := make(map[domain.SellerID]int, len(d.Ranking))
	for _, item := range d.Ranking {
		positions[item.Seller] = item.Position
	}

	rows := make([][]any, 0, len(d.Sellers.Sellers))
	for i, month := range d.Sellers.Sellers {
		annual := d.AnnualSellers.Sellers[i]
		rows = append(rows, []any{
			month.Name, month.Realized, month.Target, round(month.Attainment),
			annual.Realized, annual.Target, round(annual.Attainment), positions[month.Seller],
		})
	}

	return rows
}

func clientRows(d *domain.Dashboard) [][]any {
	if d.Portfolio == nil {
		return nil
	}

	opportunity := make(map[string]domain.ClientOpportunity)
	if d.Opportunity != nil {
		for _, c := range d.Opportunity.Clients {
			opportunity[c.ClientID] = c
		}
	}

	rows := make([][]any, 0, len(d.Portfolio.Clients))
	for _, c := range d.Portfolio.Clients {
		idle := "Não"
		if opportunity[c.ClientID].Idle {
			idle = "Sim"
		}
		rows = append(rows, []any{
			c.Name, c.Current, c.Prior, round(c.Growth), string(c.Status), round(c.CumulativeShare),
			idle, opportunity[c.ClientID].OpportunityCost,
		})
	}

	return rows
}

func operationalRows(efficiency *domain.OperationalEfficiency) [][]any {
	if efficiency == nil {
		return nil
	}

	rows := make([][]any, 0, len(efficiency.Monthly))
	for _, m := range efficiency.Monthly {
		warning := ""
		if m.Warning {
			warning = "Custo acima do limite"
		}
		rows = append(rows, []any{
			m.Month.Name(), m.Realized, m.Logistics, m.Goods, m.TotalCost, m.Margin,
			round(m.LogisticsRatio), round(m.GoodsRatio), warning,
		})
	}

	return rows
}

func round(value float64) float64 {
	return utils.RoundWithTwoDecimalPlace(value)
}
