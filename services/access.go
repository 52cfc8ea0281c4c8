package services

import "CarePortal/models"

// Actor is the authenticated caller as resolved from the session.
type Actor struct {
	UserID string
	Role   models.Role
}

func (a Actor) IsAdmin() bool   { return a.Role == models.RoleAdmin }
func (a Actor) IsDoctor() bool  { return a.Role == models.RoleDoctor }
func (a Actor) IsPatient() bool { return a.Role == models.RolePatient }

// The predicates below expect Patient and Doctor to be preloaded on the resource.

func ownsPatient(a Actor, p *models.Patient) bool {
	return p != nil && p.UserID == a.UserID
}

func ownsDoctor(a Actor, d *models.Doctor) bool {
	return d != nil && d.UserID == a.UserID
}

func canViewAppointment(a Actor, appt *models.Appointment) bool {
	switch a.Role {
	case models.RoleAdmin:
		return true
	case models.RoleDoctor:
		return ownsDoctor(a, appt.Doctor)
	case models.RolePatient:
		return ownsPatient(a, appt.Patient)
	}
	return false
}

func canCancelAppointment(a Actor, appt *models.Appointment) bool {
	return a.IsAdmin() || (a.IsPatient() && ownsPatient(a, appt.Patient))
}

func canCompleteAppointment(a Actor, appt *models.Appointment) bool {
	return a.IsDoctor() && ownsDoctor(a, appt.Doctor)
}

func canEditDoctor(a Actor, d *models.Doctor) bool {
	return a.IsAdmin() || (a.IsDoctor() && ownsDoctor(a, d))
}

func canViewPatient(a Actor, p *models.Patient) bool {
	return a.IsAdmin() || (a.IsPatient() && ownsPatient(a, p))
}

// Only the patient may edit their own profile; admins cannot.
func canEditPatient(a Actor, p *models.Patient) bool {
	return a.IsPatient() && ownsPatient(a, p)
}

func canViewMedicalRecord(a Actor, r *models.MedicalRecord) bool {
	switch a.Role {
	case models.RoleAdmin:
		return true
	case models.RoleDoctor:
		return ownsDoctor(a, r.Doctor)
	case models.RolePatient:
		return ownsPatient(a, r.Patient)
	}
	return false
}

func canViewPrescription(a Actor, p *models.Prescription) bool {
	switch a.Role {
	case models.RoleAdmin:
		return true
	case models.RoleDoctor:
		return ownsDoctor(a, p.Doctor)
	case models.RolePatient:
		return ownsPatient(a, p.Patient)
	}
	return false
}
