package models

// PredictionRequest asks for an outcome forecast between two wrestlers.
type PredictionRequest struct {
	Wrestler1ID   int64  `json:"wrestler1_id" validate:"required,gt=0"`
	Wrestler2ID   int64  `json:"wrestler2_id" validate:"required,gt=0,nefield=Wrestler1ID"`
	SeasonID      *int64 `json:"season_id,omitempty" validate:"omitempty,gt=0"`
	WeightClassID *int64 `json:"weight_class_id,omitempty" validate:"omitempty,gt=0"`
}

// MatchUpsert is one match result submitted through the ingest endpoint.
// Codes are resolved to IDs at write time; ResultType must be one of the
// known result type codes.
type MatchUpsert struct {
	Date            string `json:"date" validate:"required,datetime=2006-01-02"`
	SeasonID        int64  `json:"season_id" validate:"required,gt=0"`
	WeightClassCode string `json:"weight_class" validate:"required"`
	Wrestler1ID     int64  `json:"wrestler1_id" validate:"required,gt=0"`
	Wrestler2ID     int64  `json:"wrestler2_id" validate:"required,gt=0,nefield=Wrestler1ID"`
	Wrestler1Score  *int   `json:"wrestler1_score,omitempty"`
	Wrestler2Score  *int   `json:"wrestler2_score,omitempty"`
	WinnerID        int64  `json:"winner_id" validate:"required,gt=0"`
	ResultType      string `json:"result_type" validate:"required"`
	MeetID          *int64 `json:"meet_id,omitempty"`
	DurationSeconds *int   `json:"duration_seconds,omitempty"`
}

// ValidWinner enforces the record invariant: the winner must be one of the
// two listed wrestlers.
func (u *MatchUpsert) ValidWinner() bool {
	return u.WinnerID == u.Wrestler1ID || u.WinnerID == u.Wrestler2ID
}
