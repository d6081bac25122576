package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"ussurochki/internal/app/repository"

	"github.com/sirupsen/logrus"
)

// Экспорт заказов в плоский текстовый отчет

type Exporter struct {
	repo *repository.Repository
	dir  string
}

func New(repo *repository.Repository, dir string) *Exporter {
	return &Exporter{
		repo: repo,
		dir:  dir,
	}
}

// ExportMkl выгружает заказы МКЛ (с опциональным фильтром по статусу)
// в новый текстовый файл и возвращает его абсолютный путь
func (e *Exporter) ExportMkl(status string) (string, error) {
	orders, err := e.repo.ListMklOrders(status)
	if err != nil {
		return "", err
	}

	lines := reportHeader("МКЛ", status)
	for _, o := range orders {
		items, err := e.repo.GetMklItems(o.ID)
		if err != nil {
			return "", err
		}
		parts := make([]string, len(items))
		for i, it := range items {
			parts[i] = itemLabel(it.ProductName, it.Qty)
		}
		lines = append(lines, fmt.Sprintf("#%d | %s | %s (%s) | %s | Товары: %s",
			o.ID, o.Date, o.ClientName, o.Phone, o.Status, itemsLabel(parts)))
	}

	return e.writeReport("mkl", status, lines)
}

// ExportMeridian - то же для заказов Меридиан, без колонки клиента
func (e *Exporter) ExportMeridian(status string) (string, error) {
	orders, err := e.repo.ListMeridianOrders(status)
	if err != nil {
		return "", err
	}

	lines := reportHeader("Меридиан", status)
	for _, o := range orders {
		items, err := e.repo.GetMeridianItems(o.ID)
		if err != nil {
			return "", err
		}
		parts := make([]string, len(items))
		for i, it := range items {
			parts[i] = itemLabel(it.ProductName, it.Qty)
		}
		lines = append(lines, fmt.Sprintf("#%d | %s | %s | Товары: %s",
			o.ID, o.Date, o.Status, itemsLabel(parts)))
	}

	return e.writeReport("meridian", status, lines)
}

// reportHeader - общая шапка отчета: название конвейера, фильтр и время выгрузки
func reportHeader(pipeline, status string) []string {
	return []string{
		fmt.Sprintf("УссурОЧки.рф — Заказы %s — экспорт (%s)", pipeline, filterLabel(status)),
		"Дата выгрузки: " + time.Now().Format("2006-01-02 15:04"),
		"",
	}
}

func itemLabel(name string, qty int) string {
	return fmt.Sprintf("%s x%d", name, qty)
}

func filterLabel(status string) string {
	if status == "" {
		return "все"
	}
	return status
}

func itemsLabel(parts []string) string {
	if len(parts) == 0 {
		return "—"
	}
	return strings.Join(parts, ", ")
}

// writeReport пишет строки отчета в новый файл. Имя содержит конвейер,
// фильтр и метку времени, чтобы выгрузки не затирали друг друга.
func (e *Exporter) writeReport(pipeline, status string, lines []string) (string, error) {
	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create export dir: %w", err)
	}

	suffix := status
	if suffix == "" {
		suffix = "all"
	}
	name := fmt.Sprintf("%s_%s_%d.txt", pipeline, suffix, time.Now().UnixMilli())
	path := filepath.Join(e.dir, name)

	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o644); err != nil {
		return "", err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	logrus.Infof("exported %s orders to %s", pipeline, abs)
	return abs, nil
}
