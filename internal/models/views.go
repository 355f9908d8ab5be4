package models

// Response views. Each endpoint picks one of these projections; none of them
// embeds the view it is nested inside, so the camper/signup/activity graph
// always serializes to a finite tree.

type CamperBrief struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Age  int    `json:"age"`
}

type CamperDetail struct {
	ID      uint                 `json:"id"`
	Name    string               `json:"name"`
	Age     int                  `json:"age"`
	Signups []SignupWithActivity `json:"signups"`
}

type ActivityBrief struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	Difficulty int    `json:"difficulty"`
}

type ActivityDetail struct {
	ID         uint               `json:"id"`
	Name       string             `json:"name"`
	Difficulty int                `json:"difficulty"`
	Signups    []SignupWithCamper `json:"signups"`
}

// SignupWithActivity is a signup as seen from its camper: the camper
// back-reference is pruned.
type SignupWithActivity struct {
	ID         uint          `json:"id"`
	Time       int           `json:"time"`
	CamperID   uint          `json:"camper_id"`
	ActivityID uint          `json:"activity_id"`
	Activity   ActivityBrief `json:"activity"`
}

// SignupWithCamper is a signup as seen from its activity: the activity
// back-reference is pruned.
type SignupWithCamper struct {
	ID         uint        `json:"id"`
	Time       int         `json:"time"`
	CamperID   uint        `json:"camper_id"`
	ActivityID uint        `json:"activity_id"`
	Camper     CamperBrief `json:"camper"`
}

// SignupDetail is a standalone signup with both parents, neither of which
// re-expands its own signup collection.
type SignupDetail struct {
	ID         uint          `json:"id"`
	Time       int           `json:"time"`
	CamperID   uint          `json:"camper_id"`
	ActivityID uint          `json:"activity_id"`
	Activity   ActivityBrief `json:"activity"`
	Camper     CamperBrief   `json:"camper"`
}

func CamperBriefFromModel(c Camper) CamperBrief {
	return CamperBrief{ID: c.ID, Name: c.Name, Age: c.Age}
}

func CamperBriefsFromModels(campers []Camper) []CamperBrief {
	result := make([]CamperBrief, len(campers))
	for i, c := range campers {
		result[i] = CamperBriefFromModel(c)
	}
	return result
}

// CamperDetailFromModel expects c.Signups to be loaded with each signup's
// Activity.
func CamperDetailFromModel(c Camper) CamperDetail {
	detail := CamperDetail{
		ID:      c.ID,
		Name:    c.Name,
		Age:     c.Age,
		Signups: make([]SignupWithActivity, len(c.Signups)),
	}
	for i, s := range c.Signups {
		detail.Signups[i] = SignupWithActivity{
			ID:         s.ID,
			Time:       s.Time,
			CamperID:   s.CamperID,
			ActivityID: s.ActivityID,
		}
		if s.Activity != nil {
			detail.Signups[i].Activity = ActivityBriefFromModel(*s.Activity)
		}
	}
	return detail
}

func ActivityBriefFromModel(a Activity) ActivityBrief {
	return ActivityBrief{ID: a.ID, Name: a.Name, Difficulty: a.Difficulty}
}

func ActivityBriefsFromModels(activities []Activity) []ActivityBrief {
	result := make([]ActivityBrief, len(activities))
	for i, a := range activities {
		result[i] = ActivityBriefFromModel(a)
	}
	return result
}

// ActivityDetailFromModel expects a.Signups to be loaded with each signup's
// Camper.
func ActivityDetailFromModel(a Activity) ActivityDetail {
	detail := ActivityDetail{
		ID:         a.ID,
		Name:       a.Name,
		Difficulty: a.Difficulty,
		Signups:    make([]SignupWithCamper, len(a.Signups)),
	}
	for i, s := range a.Signups {
		detail.Signups[i] = SignupWithCamper{
			ID:         s.ID,
			Time:       s.Time,
			CamperID:   s.CamperID,
			ActivityID: s.ActivityID,
		}
		if s.Camper != nil {
			detail.Signups[i].Camper = CamperBriefFromModel(*s.Camper)
		}
	}
	return detail
}

// SignupDetailFromModel expects both s.Activity and s.Camper to be loaded.
func SignupDetailFromModel(s Signup) SignupDetail {
	detail := SignupDetail{
		ID:         s.ID,
		Time:       s.Time,
		CamperID:   s.CamperID,
		ActivityID: s.ActivityID,
	}
	if s.Activity != nil {
		detail.Activity = ActivityBriefFromModel(*s.Activity)
	}
	if s.Camper != nil {
		detail.Camper = CamperBriefFromModel(*s.Camper)
	}
	return detail
}
