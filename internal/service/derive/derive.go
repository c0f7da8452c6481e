// Package derive menghitung kolom turunan dari kolom sumber lewat fungsi
// heuristik murni: pengelompokan Admin OPD, kategori & nama pendek OPD,
// dan identifikasi daerah dari koordinat mentah. Paket ini satu-satunya
// produsen kolom turunan; konsumen hilir membaca hasilnya, tidak
// menghitung ulang.
package derive

import (
	"github.com/nafilahanum/dashboard-analisa-inovasi-jatim/internal/model"
	"github.com/nafilahanum/dashboard-analisa-inovasi-jatim/internal/service/gazetteer"
)

// Options Parameter derivasi
type Options struct {
	Gazetteer       []gazetteer.Entry
	RegionThreshold float64
}

// Apply Mengisi seluruh field turunan pada dataset, in place, sekali
// setelah normalisasi. Daerah hanya diidentifikasi untuk baris dengan
// koordinat valid dan gazetteer terisi; selain itu jatuh ke kolom
// Daerah sumber bila ada.
func Apply(ds *model.Dataset, opts Options) {
	threshold := opts.RegionThreshold
	if threshold <= 0 {
		threshold = DefaultRegionThreshold
	}

	for _, r := range ds.Records {
		r.OrgGroup = GroupAdminOrg(r.AdminOrg)
		r.OrgCategory = CategorizeAdminOrg(r.AdminOrg)
		r.OrgShortName = ShortOrgName(r.AdminOrg)

		switch {
		case r.HasCoordinate() && len(opts.Gazetteer) > 0:
			region := ResolveRegion(*r.Latitude, *r.Longitude, opts.Gazetteer, threshold)
			r.Region = &region
		case r.RegionRaw != nil:
			r.Region = r.RegionRaw
		default:
			r.Region = nil
		}
	}
}
