package export

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"ussurochki/internal/app/ds"
	"ussurochki/internal/app/repository"

	"github.com/stretchr/testify/require"
)

func newTestExporter(t *testing.T) (*Exporter, *repository.Repository) {
	t.Helper()
	dir := t.TempDir()
	repo, err := repository.New(filepath.Join(dir, "test.db"))
	require.NoError(t, err)
	return New(repo, filepath.Join(dir, "exports")), repo
}

func TestExportMklFilteredByStatus(t *testing.T) {
	exporter, repo := newTestExporter(t)

	client, err := repo.SaveClient(ds.Client{Name: "Иванов", Phone: "+7-900-111-11-11"})
	require.NoError(t, err)
	product, err := repo.SaveProduct(ds.Product{Name: "Линзы А", Price: 500})
	require.NoError(t, err)

	delivered1, err := repo.SaveMklOrder(ds.MklOrder{ClientID: client.ID, Status: ds.StatusDelivered, Date: "2026-02-01"})
	require.NoError(t, err)
	_, err = repo.ReplaceMklItems(delivered1.ID, []ds.MklOrderItem{{ProductID: product.ID, Qty: 2}})
	require.NoError(t, err)

	delivered2, err := repo.SaveMklOrder(ds.MklOrder{ClientID: client.ID, Status: ds.StatusDelivered, Date: "2026-01-15"})
	require.NoError(t, err)

	_, err = repo.SaveMklOrder(ds.MklOrder{ClientID: client.ID, Status: ds.StatusOrdered, Date: "2026-02-10"})
	require.NoError(t, err)

	file, err := exporter.ExportMkl(ds.StatusDelivered)
	require.NoError(t, err)
	require.True(t, filepath.IsAbs(file))
	require.Contains(t, filepath.Base(file), "mkl_вручен_")

	content, err := os.ReadFile(file)
	require.NoError(t, err)
	lines := strings.Split(string(content), "\n")

	// заголовок, дата выгрузки, пустая строка и ровно два заказа
	require.Len(t, lines, 5)
	require.Equal(t, "УссурОЧки.рф — Заказы МКЛ — экспорт (вручен)", lines[0])
	require.True(t, strings.HasPrefix(lines[1], "Дата выгрузки: "))
	require.Equal(t, "", lines[2])

	// список отсортирован по дате по убыванию, порядок отчета тот же
	require.Contains(t, lines[3], "#"+itoa(delivered1.ID))
	require.Contains(t, lines[3], "2026-02-01")
	require.Contains(t, lines[3], "Иванов (+7-900-111-11-11)")
	require.Contains(t, lines[3], "Товары: Линзы А x2")

	// без позиций вместо списка стоит тире
	require.Contains(t, lines[4], "#"+itoa(delivered2.ID))
	require.Contains(t, lines[4], "Товары: —")
}

func TestExportMklUnfiltered(t *testing.T) {
	exporter, repo := newTestExporter(t)

	client, err := repo.SaveClient(ds.Client{Name: "Иванов"})
	require.NoError(t, err)
	_, err = repo.SaveMklOrder(ds.MklOrder{ClientID: client.ID})
	require.NoError(t, err)

	file, err := exporter.ExportMkl("")
	require.NoError(t, err)
	require.Contains(t, filepath.Base(file), "mkl_all_")

	content, err := os.ReadFile(file)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(content), "УссурОЧки.рф — Заказы МКЛ — экспорт (все)"))
}

func TestExportMeridianOmitsClient(t *testing.T) {
	exporter, repo := newTestExporter(t)

	order, err := repo.SaveMeridianOrder(ds.MeridianOrder{})
	require.NoError(t, err)
	_, err = repo.ReplaceMeridianItems(order.ID, []ds.MeridianOrderItem{
		{ProductName: "Оправа синяя", Qty: 3},
		{ProductName: "Салфетки", Qty: 1},
	})
	require.NoError(t, err)

	file, err := exporter.ExportMeridian("")
	require.NoError(t, err)
	require.Contains(t, filepath.Base(file), "meridian_all_")

	content, err := os.ReadFile(file)
	require.NoError(t, err)
	lines := strings.Split(string(content), "\n")
	require.Len(t, lines, 4)
	require.Equal(t, "УссурОЧки.рф — Заказы Меридиан — экспорт (все)", lines[0])

	// формат строки: id, дата, статус, товары - без клиента
	parts := strings.Split(lines[3], " | ")
	require.Len(t, parts, 4)
	require.Equal(t, ds.StatusNotOrdered, parts[2])
	require.Equal(t, "Товары: Оправа синяя x3, Салфетки x1", parts[3])
}

func TestExportCreatesDirOnDemand(t *testing.T) {
	dir := t.TempDir()
	repo, err := repository.New(filepath.Join(dir, "test.db"))
	require.NoError(t, err)

	exportDir := filepath.Join(dir, "nested", "exports")
	exporter := New(repo, exportDir)

	file, err := exporter.ExportMeridian("")
	require.NoError(t, err)
	require.Equal(t, exportDir, filepath.Dir(file))
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
