package service

import "context"

const (
	diagCollectionsCap = 10
	diagErrCap         = 50
)

// DiagReport mirrors the shape the ops dashboard scrapes. Nullable fields
// stay null until the store answers.
type DiagReport struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      *string  `json:"database_url"`
	DatabaseName     *string  `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

// Diagnostics never fails: every store error degrades to a descriptive
// field value so the endpoint stays useful when the database is down.
func (s *Service) Diagnostics(ctx context.Context) DiagReport {
	rep := DiagReport{
		Backend:          "✅ Running",
		Database:         "❌ Not Available",
		ConnectionStatus: "Not Connected",
		Collections:      []string{},
	}
	if s.StoreInfo == nil {
		return rep
	}

	rep.Database = "✅ Available"
	urlState := "❌ Not Set"
	if s.databaseURL != "" {
		urlState = "✅ Set"
	}
	rep.DatabaseURL = &urlState
	name := s.StoreInfo.DatabaseName()
	rep.DatabaseName = &name
	rep.ConnectionStatus = "Connected"

	names, err := s.StoreInfo.CollectionNames(ctx)
	if err != nil {
		rep.Database = "⚠️  Connected but Error: " + truncateErr(err, diagErrCap)
		return rep
	}
	if len(names) > diagCollectionsCap {
		names = names[:diagCollectionsCap]
	}
	rep.Collections = names
	rep.Database = "✅ Connected & Working"
	return rep
}

// truncateErr cuts on rune boundaries so multi-byte text stays valid UTF-8.
func truncateErr(err error, n int) string {
	msg := []rune(err.Error())
	if len(msg) > n {
		msg = msg[:n]
	}
	return string(msg)
}
