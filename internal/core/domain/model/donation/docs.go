// Package donation contains the central aggregate of the workflow: the
// Donation and its lifecycle state machine, the claim Request an NGO places on
// it, the volunteer Team scheduled to pick it up, and the OTP value
// object that gates pickup confirmation.
//
// The donation status only ever moves forward (New, Assigned, Scheduled,
// Picked, Completed); every transition is owned by exactly one application
// command. Requests and teams are owned by the donation they reference and
// are never mutated independently of it.
package donation
