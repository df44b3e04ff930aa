package http

import (
	"gigboard/internal/core/application/orchestrator"
	"gigboard/internal/core/domain/model/job"
	"gigboard/internal/core/domain/model/vehicle"
)

// Error is the body every failed request carries.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// JobResponse is the wire representation of one worklist entry.
type JobResponse struct {
	Id             string  `json:"id"`
	Provider       string  `json:"provider"`
	PickupName     string  `json:"pickupName"`
	Counterpart    string  `json:"counterpart"`
	PickupAddress  string  `json:"pickupAddress"`
	DropoffAddress string  `json:"dropoffAddress"`
	Notes          string  `json:"notes,omitempty"`
	PayoutUsd      float64 `json:"payoutUsd"`
	DistanceMi     float64 `json:"distanceMi"`
	PickupEtaMin   int     `json:"pickupEtaMin"`
	DropoffEtaMin  int     `json:"dropoffEtaMin"`
	Status         string  `json:"status"`
	Score          float64 `json:"score"`
}

func toJobResponse(j *job.Job) JobResponse {
	details := j.Details()
	return JobResponse{
		Id:             j.ID(),
		Provider:       j.Provider().String(),
		PickupName:     details.PickupName,
		Counterpart:    details.Counterpart,
		PickupAddress:  details.PickupAddress,
		DropoffAddress: details.DropoffAddress,
		Notes:          details.Notes,
		PayoutUsd:      j.Payout(),
		DistanceMi:     j.Distance(),
		PickupEtaMin:   j.PickupEtaMin(),
		DropoffEtaMin:  j.DropoffEtaMin(),
		Status:         j.Status().String(),
		Score:          j.Score(),
	}
}

func toJobResponses(jobs []*job.Job) []JobResponse {
	response := make([]JobResponse, len(jobs))
	for i, j := range jobs {
		response[i] = toJobResponse(j)
	}
	return response
}

// VehicleRequest carries a telemetry snapshot pushed by the vehicle bridge.
type VehicleRequest struct {
	SpeedKph     float64 `json:"speedKph"`
	BatteryPct   int     `json:"batteryPct"`
	OutsideTempC float64 `json:"outsideTempC"`
}

// VehicleResponse reports the current snapshot and the access level the
// safety gate derives from it.
type VehicleResponse struct {
	SpeedKph     float64 `json:"speedKph"`
	BatteryPct   int     `json:"batteryPct"`
	OutsideTempC float64 `json:"outsideTempC"`
	Access       string  `json:"access"`
}

func toVehicleResponse(state vehicle.State) VehicleResponse {
	return VehicleResponse{
		SpeedKph:     state.SpeedKph(),
		BatteryPct:   state.BatteryPct(),
		OutsideTempC: state.OutsideTempC(),
		Access:       state.Access().String(),
	}
}

// TranscriptRequest carries one speech-recognition result. Final marks the
// utterance as complete and ready for classification.
type TranscriptRequest struct {
	Text  string `json:"text"`
	Final bool   `json:"final"`
}

// FocusRequest names the job the detail views should present.
type FocusRequest struct {
	Id string `json:"id"`
}

// VoiceResponse reports whether voice control is currently enabled.
type VoiceResponse struct {
	Enabled bool `json:"enabled"`
}

// UIResponse is the presentation snapshot the renderer polls.
type UIResponse struct {
	VoiceEnabled   bool   `json:"voiceEnabled"`
	LastError      string `json:"lastError,omitempty"`
	LiveTranscript string `json:"liveTranscript,omitempty"`
}

func toUIResponse(state orchestrator.UIState) UIResponse {
	return UIResponse{
		VoiceEnabled:   state.VoiceEnabled,
		LastError:      state.LastError,
		LiveTranscript: state.LiveTranscript,
	}
}
