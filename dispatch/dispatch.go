package dispatch

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/ai4health/triage-api/consts"
	"github.com/ai4health/triage-api/schema"
	"github.com/ai4health/triage-api/score"
	"github.com/ai4health/triage-api/store"
	"github.com/ai4health/triage-api/utils"
)

const logPrefix = "dispatch"

var (
	ErrInvalidPriority      = fmt.Errorf("priority must be between %d and %d", score.MinPriority, score.MaxPriority)
	ErrNoDoctorAvailable    = fmt.Errorf("no doctor available")
	ErrNoAmbulanceAvailable = fmt.Errorf("no ambulance available")
)

type specialtyRule struct {
	specialty string
	keywords  []string
}

// rules are matched in order, the first matching rule wins
var specialtyRules = []specialtyRule{
	{"cardiology", []string{"cardiac", "chest", "heart"}},
	{"orthopedics", []string{"fracture", "bone"}},
	{"neurology", []string{"faint", "unconscious", "headache", "seizure"}},
	{"dermatology", []string{"bruise", "swelling", "skin", "wound", "rash"}},
	{"nephrology", []string{"kidney"}},
}

// SpecialtyFor infers the specialty which should handle the symptoms
func SpecialtyFor(symptoms []string) string {
	for _, rule := range specialtyRules {
		for _, s := range symptoms {
			s = strings.ToLower(s)
			for _, k := range rule.keywords {
				if strings.Contains(s, k) {
					return rule.specialty
				}
			}
		}
	}
	return "general"
}

type Option func(*Dispatcher)

// WithClock overrides the clock used for arrival times
func WithClock(now func() time.Time) Option {
	return func(d *Dispatcher) {
		d.now = now
	}
}

// WithSpeed sets the average ambulance speed used to estimate arrival
func WithSpeed(kmh float64) Option {
	return func(d *Dispatcher) {
		if kmh > 0 {
			d.speedKmh = kmh
		}
	}
}

// Dispatcher assigns doctors and ambulances. Assignments only depend on
// the directory content and the request, ties go to the lowest id.
type Dispatcher struct {
	directory store.Directory
	now       func() time.Time
	speedKmh  float64
}

func New(directory store.Directory, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		directory: directory,
		now:       time.Now,
		speedKmh:  consts.DefaultAmbulanceSpeedKmh,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Dispatch assigns a doctor and, for urgent cases, an ambulance
func (d *Dispatcher) Dispatch(symptoms []string, priority int, loc *schema.Location) (*schema.DispatchRecord, error) {
	if !score.ValidPriority(priority) {
		return nil, ErrInvalidPriority
	}

	doctor, err := d.AssignDoctor(symptoms, priority, loc)
	if err != nil {
		return nil, err
	}

	ambulance, err := d.AssignAmbulance(priority, loc, nil)
	if err != nil {
		return nil, err
	}

	record := &schema.DispatchRecord{
		ID:        uuid.New().String(),
		Symptoms:  symptoms,
		Priority:  priority,
		Location:  loc,
		Doctor:    *doctor,
		Ambulance: *ambulance,
		Timestamp: d.now().Unix(),
	}

	log.WithFields(log.Fields{
		"prefix":      logPrefix,
		"dispatch_id": record.ID,
		"priority":    priority,
		"doctor":      doctor.ID,
		"ambulance":   ambulance.Status,
	}).Info("dispatch assigned")

	return record, nil
}

func (d *Dispatcher) AssignDoctor(symptoms []string, priority int, loc *schema.Location) (*schema.DoctorAssignment, error) {
	if !score.ValidPriority(priority) {
		return nil, ErrInvalidPriority
	}

	hospitals, err := d.directory.ListHospitals("")
	if err != nil {
		return nil, err
	}
	hospitalByID := make(map[int64]schema.Hospital, len(hospitals))
	for _, h := range hospitals {
		hospitalByID[h.ID] = h
	}

	specialties := []string{SpecialtyFor(symptoms), "general", ""}
	if priority >= consts.EmergencySpecialtyPriority {
		specialties = append([]string{"emergency"}, specialties...)
	}

	var candidates []schema.Doctor
	for _, s := range specialties {
		candidates, err = d.directory.ListDoctors(s)
		if err != nil {
			return nil, err
		}
		if len(candidates) > 0 {
			break
		}
	}
	if len(candidates) == 0 {
		return nil, ErrNoDoctorAvailable
	}

	etas := make(map[int64]int, len(candidates))
	for _, c := range candidates {
		etas[c.ID] = d.hospitalETA(hospitalByID, c.HospitalID, loc)
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		if etas[candidates[i].ID] != etas[candidates[j].ID] {
			return etas[candidates[i].ID] < etas[candidates[j].ID]
		}
		return candidates[i].ID < candidates[j].ID
	})

	doctor := candidates[0]
	assignment := &schema.DoctorAssignment{
		ID:          doctor.ID,
		ConsultType: schema.ConsultTeleconsult,
		DoctorName:  doctor.Name,
		Specialty:   doctor.Specialty,
		Contact:     doctor.Phone,
		HospitalID:  doctor.HospitalID,
	}

	if priority >= consts.TeleconsultPriorityThreshold {
		eta := etas[doctor.ID]
		assignment.ConsultType = schema.ConsultEmergency
		assignment.ETAMinutes = eta
		assignment.ExpectedArrival = d.arrival(eta)
	}

	return assignment, nil
}

// AssignAmbulance picks the nearest ambulance partner which is not excluded.
// Priorities below the ambulance threshold get no ambulance.
func (d *Dispatcher) AssignAmbulance(priority int, loc *schema.Location, exclude []int64) (*schema.AmbulanceAssignment, error) {
	if !score.ValidPriority(priority) {
		return nil, ErrInvalidPriority
	}

	if priority < consts.AmbulancePriorityThreshold {
		return &schema.AmbulanceAssignment{Status: schema.AmbulanceNotNeeded}, nil
	}

	ngos, err := d.directory.ListNGOs()
	if err != nil {
		return nil, err
	}

	excluded := make(map[int64]struct{}, len(exclude))
	for _, id := range exclude {
		excluded[id] = struct{}{}
	}

	var (
		best     *schema.NGO
		bestDist float64
	)
	for i := range ngos {
		n := ngos[i]
		if _, ok := excluded[n.ID]; ok {
			continue
		}

		dist := 0.0
		if loc != nil {
			dist = utils.Distance(*loc, n.Location())
		}
		if best == nil || dist < bestDist || (dist == bestDist && n.ID < best.ID) {
			best = &ngos[i]
			bestDist = dist
		}
	}

	if best == nil {
		return nil, ErrNoAmbulanceAvailable
	}

	eta := consts.DefaultAmbulanceETA
	if loc != nil {
		eta = d.travelMinutes(bestDist)
	}

	return &schema.AmbulanceAssignment{
		Status:          schema.AmbulanceDispatched,
		NGOID:           best.ID,
		AmbulanceName:   best.Name,
		Contact:         best.Phone,
		ETAMinutes:      eta,
		ExpectedArrival: d.arrival(eta),
	}, nil
}

// Reassign picks the next ambulance for a dispatch whose ambulance is late
func (d *Dispatcher) Reassign(record *schema.DispatchRecord) (*schema.AmbulanceAssignment, error) {
	exclude := append([]int64{}, record.PreviousNGOs...)
	if record.Ambulance.NGOID != 0 {
		exclude = append(exclude, record.Ambulance.NGOID)
	}
	return d.AssignAmbulance(record.Priority, record.Location, exclude)
}

func (d *Dispatcher) hospitalETA(hospitals map[int64]schema.Hospital, id int64, loc *schema.Location) int {
	h, ok := hospitals[id]
	if !ok {
		return consts.DefaultAmbulanceETA
	}
	if loc == nil {
		return h.ETAMinutes
	}
	return d.travelMinutes(utils.Distance(*loc, h.Location()))
}

func (d *Dispatcher) travelMinutes(km float64) int {
	eta := int(math.Ceil(km / d.speedKmh * 60))
	if eta < consts.MinAmbulanceETA {
		return consts.MinAmbulanceETA
	}
	return eta
}

func (d *Dispatcher) arrival(etaMinutes int) string {
	return d.now().Add(time.Duration(etaMinutes) * time.Minute).Format(consts.ExpectedArrivalLayout)
}
