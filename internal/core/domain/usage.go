package domain

import "time"

// Usage counter names, one per HTTP endpoint.
const (
	UsageGetAllFieldID       = "GetAllFieldIdPerDay"
	UsageGetAllFieldMetaInfo = "GetAllFieldMetaInfoPerDay"
	UsageGetFieldByID        = "GetFieldByIdPerDay"
	UsageGetAllField         = "GetAllFieldPerDay"
	UsagePostField           = "PostFieldPerDay"
	UsagePutFieldByID        = "PutFieldByIdPerDay"
	UsageDeleteFieldByID     = "DeleteFieldByIdPerDay"

	UsageGetAllConversionSetID       = "GetAllFieldCartographicConversionSetIdPerDay"
	UsageGetAllConversionSetMetaInfo = "GetAllFieldCartographicConversionSetMetaInfoPerDay"
	UsageGetConversionSetByID        = "GetFieldCartographicConversionSetByIdPerDay"
	UsageGetAllConversionSetLight    = "GetAllFieldCartographicConversionSetLightPerDay"
	UsageGetAllConversionSet         = "GetAllFieldCartographicConversionSetPerDay"
	UsagePostConversionSet           = "PostFieldCartographicConversionSetPerDay"
	UsagePutConversionSetByID        = "PutFieldCartographicConversionSetByIdPerDay"
	UsageDeleteConversionSetByID     = "DeleteFieldCartographicConversionSetByIdPerDay"
)

// UsageEndpoints lists every counter name in route order.
var UsageEndpoints = []string{
	UsageGetAllFieldID,
	UsageGetAllFieldMetaInfo,
	UsageGetFieldByID,
	UsageGetAllField,
	UsagePostField,
	UsagePutFieldByID,
	UsageDeleteFieldByID,
	UsageGetAllConversionSetID,
	UsageGetAllConversionSetMetaInfo,
	UsageGetConversionSetByID,
	UsageGetAllConversionSetLight,
	UsageGetAllConversionSet,
	UsagePostConversionSet,
	UsagePutConversionSetByID,
	UsageDeleteConversionSetByID,
}

// CountPerDay is the number of hits recorded on one UTC calendar day.
type CountPerDay struct {
	Date  time.Time `json:"Date"`
	Count uint64    `json:"Count"`
}

// History is the day-bucketed hit sequence of one endpoint, oldest first.
type History struct {
	Data []CountPerDay `json:"Data"`
}

// Increment adds one hit to the bucket of now's UTC day. Any other day opens a new
// bucket, so a clock that stepped backward never credits a later day.
func (h *History) Increment(now time.Time) {
	day := truncateDay(now)
	last := len(h.Data) - 1
	if last < 0 || !h.Data[last].Date.Equal(day) {
		h.Data = append(h.Data, CountPerDay{Date: day, Count: 1})
		return
	}
	h.Data[last].Count++
}

// UsageStatistics maps endpoint names to their hit histories.
type UsageStatistics struct {
	LastSaved      time.Time           `json:"LastSaved"`
	BackUpInterval time.Duration       `json:"BackUpInterval"`
	Endpoints      map[string]*History `json:"Endpoints"`
}

// NewUsageStatistics returns an empty counter set.
func NewUsageStatistics(interval time.Duration) *UsageStatistics {
	return &UsageStatistics{
		BackUpInterval: interval,
		Endpoints:      make(map[string]*History),
	}
}

// Increment records one hit for endpoint at now.
func (u *UsageStatistics) Increment(endpoint string, now time.Time) {
	if u.Endpoints == nil {
		u.Endpoints = make(map[string]*History)
	}
	h, ok := u.Endpoints[endpoint]
	if !ok || h == nil {
		h = &History{}
		u.Endpoints[endpoint] = h
	}
	h.Increment(now)
}

// BackupDue reports whether more than BackUpInterval elapsed since the last save.
func (u *UsageStatistics) BackupDue(now time.Time) bool {
	return now.After(u.LastSaved.Add(u.BackUpInterval))
}

// Clone returns a deep copy safe to hand out while the original keeps changing.
func (u *UsageStatistics) Clone() *UsageStatistics {
	out := &UsageStatistics{
		LastSaved:      u.LastSaved,
		BackUpInterval: u.BackUpInterval,
		Endpoints:      make(map[string]*History, len(u.Endpoints)),
	}
	for name, h := range u.Endpoints {
		if h == nil {
			continue
		}
		data := make([]CountPerDay, len(h.Data))
		copy(data, h.Data)
		out.Endpoints[name] = &History{Data: data}
	}
	return out
}

func truncateDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
