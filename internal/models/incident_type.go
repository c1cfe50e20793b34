package models

// Incident types emitted by the detectors. The column is an open string; these
// are the values the dashboards style specially.
const (
	IncidentGunThreat          = "Gun Threat"
	IncidentUnauthorizedAccess = "Unauthorized Access"
	IncidentFaceRecognized     = "Face Recognized"
	IncidentSuspiciousActivity = "Suspicious Activity"
	IncidentMotionDetection    = "Motion Detection"
)
