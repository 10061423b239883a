package store

import (
	"encoding/json"
	"sort"

	"github.com/ai4health/triage-api/schema"
)

// Directory lists the care providers a dispatch can be assigned to.
// An empty specialty lists every entry. Results are ordered by id.
type Directory interface {
	ListDoctors(specialty string) ([]schema.Doctor, error)
	ListHospitals(specialty string) ([]schema.Hospital, error)
	ListNGOs() ([]schema.NGO, error)
}

// ListDoctors returns verified doctors
func (s *TriageStore) ListDoctors(specialty string) ([]schema.Doctor, error) {
	doctors := make([]schema.Doctor, 0)

	q := s.ormDB.Where("verified = ?", true)
	if specialty != "" {
		q = q.Where("specialty = ?", specialty)
	}
	if err := q.Order("id").Find(&doctors).Error; err != nil {
		return nil, err
	}
	return doctors, nil
}

func (s *TriageStore) ListHospitals(specialty string) ([]schema.Hospital, error) {
	hospitals := make([]schema.Hospital, 0)

	q := s.ormDB
	if specialty != "" {
		contains, err := json.Marshal([]string{specialty})
		if err != nil {
			return nil, err
		}
		q = q.Where("specialties @> ?::jsonb", string(contains))
	}
	if err := q.Order("id").Find(&hospitals).Error; err != nil {
		return nil, err
	}
	return hospitals, nil
}

func (s *TriageStore) ListNGOs() ([]schema.NGO, error) {
	ngos := make([]schema.NGO, 0)
	if err := s.ormDB.Order("id").Find(&ngos).Error; err != nil {
		return nil, err
	}
	return ngos, nil
}

// MemoryDirectory is a read only Directory over fixed lists. It backs
// offline tools which run without a database.
type MemoryDirectory struct {
	hospitals []schema.Hospital
	doctors   []schema.Doctor
	ngos      []schema.NGO
}

func NewMemoryDirectory(hospitals []schema.Hospital, doctors []schema.Doctor, ngos []schema.NGO) *MemoryDirectory {
	d := &MemoryDirectory{
		hospitals: append([]schema.Hospital{}, hospitals...),
		doctors:   append([]schema.Doctor{}, doctors...),
		ngos:      append([]schema.NGO{}, ngos...),
	}

	sort.Slice(d.hospitals, func(i, j int) bool { return d.hospitals[i].ID < d.hospitals[j].ID })
	sort.Slice(d.doctors, func(i, j int) bool { return d.doctors[i].ID < d.doctors[j].ID })
	sort.Slice(d.ngos, func(i, j int) bool { return d.ngos[i].ID < d.ngos[j].ID })
	return d
}

func (d *MemoryDirectory) ListDoctors(specialty string) ([]schema.Doctor, error) {
	doctors := make([]schema.Doctor, 0)
	for _, doc := range d.doctors {
		if doc.Verified && (specialty == "" || doc.Specialty == specialty) {
			doctors = append(doctors, doc)
		}
	}
	return doctors, nil
}

func (d *MemoryDirectory) ListHospitals(specialty string) ([]schema.Hospital, error) {
	hospitals := make([]schema.Hospital, 0)
	for _, h := range d.hospitals {
		if specialty == "" || h.Specialties.Has(specialty) {
			hospitals = append(hospitals, h)
		}
	}
	return hospitals, nil
}

func (d *MemoryDirectory) ListNGOs() ([]schema.NGO, error) {
	return append([]schema.NGO{}, d.ngos...), nil
}
