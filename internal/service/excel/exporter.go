package excel

import (
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/nafilahanum/dashboard-analisa-inovasi-jatim/internal/model"
)

const exportSheetName = "Filtered"

// Export Menulis tampilan terfilter ke satu sheet xlsx.
// Kolom: "No" + kolom asli dataset + kolom hasil derivasi.
// Lebar kolom = maks(panjang header, sel terpanjang) + 2.
func Export(ds *model.Dataset, view []*model.Record) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName(f.GetSheetName(0), exportSheetName)

	headers := exportHeaders(ds)
	widths := make([]int, len(headers))

	headerRow := make([]interface{}, len(headers))
	for i, h := range headers {
		headerRow[i] = h
		widths[i] = len(h)
	}
	if err := f.SetSheetRow(exportSheetName, "A1", &headerRow); err != nil {
		return nil, fmt.Errorf("gagal menulis header: %w", err)
	}

	for rowIdx, rec := range view {
		values := exportRow(ds, rec, rowIdx+1)
		for i, v := range values {
			if s, ok := v.(string); ok && len(s) > widths[i] {
				widths[i] = len(s)
			}
		}

		cell, err := excelize.CoordinatesToCellName(1, rowIdx+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(exportSheetName, cell, &values); err != nil {
			return nil, fmt.Errorf("gagal menulis baris %d: %w", rowIdx+2, err)
		}
	}

	for i, w := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			continue
		}
		f.SetColWidth(exportSheetName, col, col, float64(w+2))
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("gagal menulis buffer xlsx: %w", err)
	}
	return buf.Bytes(), nil
}

func exportHeaders(ds *model.Dataset) []string {
	headers := []string{"No"}
	headers = append(headers, ds.Columns...)
	headers = append(headers,
		model.ColOrgGroup,
		model.ColOrgShortName,
		model.ColRegionFound,
	)
	return headers
}

func exportRow(ds *model.Dataset, rec *model.Record, no int) []interface{} {
	values := make([]interface{}, 0, len(ds.Columns)+4)
	values = append(values, strconv.Itoa(no))
	for _, c := range ds.Columns {
		values = append(values, rec.Cell(c))
	}

	region := ""
	if rec.Region != nil {
		region = *rec.Region
	}
	values = append(values, rec.OrgGroup, rec.OrgShortName, region)
	return values
}
