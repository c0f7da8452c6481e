// Package dataset memiliki state pipeline: memuat sumber, menjalankan
// normalisasi + derivasi, memoisasi hasil per identitas sumber, dan
// menyimpan snapshot ke store. Seluruh konsumen membaca snapshot
// immutable; penggantian dataset bersifat atomik.
package dataset

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"log"
	"os"
	"sync"

	gocache "github.com/patrickmn/go-cache"

	"github.com/nafilahanum/dashboard-analisa-inovasi-jatim/internal/model"
	"github.com/nafilahanum/dashboard-analisa-inovasi-jatim/internal/service/derive"
	"github.com/nafilahanum/dashboard-analisa-inovasi-jatim/internal/service/excel"
	"github.com/nafilahanum/dashboard-analisa-inovasi-jatim/internal/service/gazetteer"
	"github.com/nafilahanum/dashboard-analisa-inovasi-jatim/internal/store"
)

// Manager Pemilik state pipeline untuk satu proses
type Manager struct {
	mu      sync.RWMutex
	current *model.Dataset

	// Hasil normalisasi+derivasi dimemoisasi per hash isi sumber;
	// keluaran Filter Engine sengaja tidak di-cache (murah dan
	// bergantung state predikat sesaat).
	memo *gocache.Cache

	store     *store.Store
	gazetteer []gazetteer.Entry
	threshold float64
}

// NewManager Membuat manajer pipeline.
// st boleh nil (tanpa persistensi, mis. pada test).
func NewManager(st *store.Store, gz []gazetteer.Entry, regionThreshold float64) *Manager {
	return &Manager{
		memo:      gocache.New(gocache.NoExpiration, 0),
		store:     st,
		gazetteer: gz,
		threshold: regionThreshold,
	}
}

// Restore Memulihkan snapshot terakhir dari store saat proses mulai
func (m *Manager) Restore() error {
	if m.store == nil {
		return nil
	}

	ds, err := m.store.LoadDataset()
	if err != nil {
		return err
	}
	if ds == nil {
		return nil
	}

	m.mu.Lock()
	m.current = ds
	m.mu.Unlock()

	if ds.SourceHash != "" {
		m.memo.Set(ds.SourceHash, ds, gocache.NoExpiration)
	}
	return nil
}

// Current Snapshot dataset aktif; nil bila belum ada yang dimuat
func (m *Manager) Current() *model.Dataset {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// LoadBytes Membangun (atau mengambil dari memo) dataset dari isi berkas
// unggahan. Sumber gagal dibaca -> dataset kosong jadi state aktif dan
// error LoadError dikembalikan untuk dilaporkan ke pengguna; proses tetap
// hidup.
func (m *Manager) LoadBytes(data []byte, sourceName, sheet string) (*model.Dataset, error) {
	sum := sha256.Sum256(data)
	hash := hex.EncodeToString(sum[:])

	if cached, ok := m.memo.Get(hash); ok {
		ds := cached.(*model.Dataset)
		m.setCurrent(ds)
		return ds, nil
	}

	ds, err := excel.Load(bytes.NewReader(data), sheet)
	ds.SourceHash = hash
	if ds.SourceName == "" {
		ds.SourceName = sourceName
	}
	if err != nil {
		m.setCurrent(ds)
		return ds, err
	}

	derive.Apply(ds, derive.Options{
		Gazetteer:       m.gazetteer,
		RegionThreshold: m.threshold,
	})

	m.memo.Set(hash, ds, gocache.NoExpiration)
	m.setCurrent(ds)
	m.persist(ds)
	return ds, nil
}

// LoadFile Memuat dataset dari jalur bawaan di disk
func (m *Manager) LoadFile(path, sheet string) (*model.Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		ds := &model.Dataset{SourceName: path}
		m.setCurrent(ds)
		return ds, &excel.LoadError{Cause: err}
	}
	return m.LoadBytes(data, path, sheet)
}

func (m *Manager) setCurrent(ds *model.Dataset) {
	m.mu.Lock()
	m.current = ds
	m.mu.Unlock()
}

func (m *Manager) persist(ds *model.Dataset) {
	if m.store == nil {
		return
	}
	if err := m.store.SaveDataset(ds); err != nil {
		// Persistensi gagal bukan alasan menggagalkan pemuatan
		log.Printf("gagal menyimpan snapshot dataset: %v", err)
	}
}
