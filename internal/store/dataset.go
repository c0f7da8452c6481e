package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/nafilahanum/dashboard-analisa-inovasi-jatim/internal/model"
)

// SaveDataset Mengganti snapshot tersimpan dengan dataset baru (atomik)
func (s *Store) SaveDataset(ds *model.Dataset) error {
	if ds == nil {
		return nil
	}

	columnsJSON, err := json.Marshal(ds.Columns)
	if err != nil {
		return fmt.Errorf("gagal serialisasi kolom: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("gagal memulai transaksi: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM records`); err != nil {
		return fmt.Errorf("gagal mengosongkan records: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM dataset_meta`); err != nil {
		return fmt.Errorf("gagal mengosongkan dataset_meta: %w", err)
	}

	if _, err := tx.Exec(`
		INSERT INTO dataset_meta (
			id, source_hash, source_name, sheet_name,
			columns_json, duplicates_removed, loaded_at
		) VALUES (?, ?, ?, ?, ?, ?, ?)
	`, ds.ID, ds.SourceHash, ds.SourceName, ds.SheetName,
		string(columnsJSON), ds.DuplicatesRemoved, ds.LoadedAt); err != nil {
		return fmt.Errorf("gagal menyimpan meta dataset: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO records (
			dataset_id,
			title, kind, form, admin_org, main_affair, other_affair,
			asta_cipta, region_raw, stage, description, video_link,
			maturity, latitude, longitude,
			input_date, application_date, development_date,
			org_group, org_category, org_short_name, region,
			cells_json
		) VALUES (
			?,
			?, ?, ?, ?, ?, ?,
			?, ?, ?, ?, ?,
			?, ?, ?,
			?, ?, ?,
			?, ?, ?, ?,
			?
		)
	`)
	if err != nil {
		return fmt.Errorf("gagal menyiapkan statement: %w", err)
	}
	defer stmt.Close()

	for _, r := range ds.Records {
		cellsJSON, err := json.Marshal(r.Cells)
		if err != nil {
			return fmt.Errorf("gagal serialisasi sel: %w", err)
		}

		if _, err := stmt.Exec(
			ds.ID,
			r.Title, r.Kind, r.Form, r.AdminOrg, r.MainAffair, r.OtherAffair,
			r.AstaCipta, r.RegionRaw, r.Stage, r.Description, r.VideoLink,
			r.Maturity, r.Latitude, r.Longitude,
			r.InputDate, r.ApplicationDate, r.DevelopmentDate,
			r.OrgGroup, r.OrgCategory, r.OrgShortName, r.Region,
			string(cellsJSON),
		); err != nil {
			return fmt.Errorf("gagal menyimpan record: %w", err)
		}
	}

	return tx.Commit()
}

// LoadDataset Memuat snapshot tersimpan; (nil, nil) bila belum ada
func (s *Store) LoadDataset() (*model.Dataset, error) {
	ds := &model.Dataset{}
	var columnsJSON string

	err := s.db.QueryRow(`
		SELECT id, source_hash, source_name, sheet_name,
		       columns_json, duplicates_removed, loaded_at
		FROM dataset_meta LIMIT 1
	`).Scan(&ds.ID, &ds.SourceHash, &ds.SourceName, &ds.SheetName,
		&columnsJSON, &ds.DuplicatesRemoved, &ds.LoadedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("gagal membaca meta dataset: %w", err)
	}

	if err := json.Unmarshal([]byte(columnsJSON), &ds.Columns); err != nil {
		return nil, fmt.Errorf("gagal membaca kolom dataset: %w", err)
	}

	rows, err := s.db.Query(`
		SELECT title, kind, form, admin_org, main_affair, other_affair,
		       asta_cipta, region_raw, stage, description, video_link,
		       maturity, latitude, longitude,
		       input_date, application_date, development_date,
		       org_group, org_category, org_short_name, region,
		       cells_json
		FROM records WHERE dataset_id = ? ORDER BY id
	`, ds.ID)
	if err != nil {
		return nil, fmt.Errorf("gagal membaca records: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		r := &model.Record{}
		var cellsJSON string

		if err := rows.Scan(
			&r.Title, &r.Kind, &r.Form, &r.AdminOrg, &r.MainAffair, &r.OtherAffair,
			&r.AstaCipta, &r.RegionRaw, &r.Stage, &r.Description, &r.VideoLink,
			&r.Maturity, &r.Latitude, &r.Longitude,
			&r.InputDate, &r.ApplicationDate, &r.DevelopmentDate,
			&r.OrgGroup, &r.OrgCategory, &r.OrgShortName, &r.Region,
			&cellsJSON,
		); err != nil {
			return nil, fmt.Errorf("gagal memindai record: %w", err)
		}

		if err := json.Unmarshal([]byte(cellsJSON), &r.Cells); err != nil {
			return nil, fmt.Errorf("gagal membaca sel record: %w", err)
		}

		ds.Records = append(ds.Records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("gagal iterasi records: %w", err)
	}

	return ds, nil
}
