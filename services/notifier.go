package services

import (
	"CarePortal/models"
	"CarePortal/utils"
	"fmt"
	"html"

	"github.com/rs/zerolog/log"
)

const appointmentTimeLayout = "Mon, 02 Jan 2006 15:04"

// Notifier emails patients about their appointments. Delivery problems are logged and swallowed.
type Notifier struct {
	mailer utils.Mailer
}

func NewNotifier(mailer utils.Mailer) *Notifier {
	if mailer == nil {
		mailer = utils.NopMailer{}
	}
	return &Notifier{mailer: mailer}
}

func (n *Notifier) AppointmentBooked(appt *models.Appointment) {
	n.send(appt, "Appointment confirmed", "is booked")
}

func (n *Notifier) AppointmentCancelled(appt *models.Appointment) {
	n.send(appt, "Appointment cancelled", "has been cancelled")
}

func (n *Notifier) send(appt *models.Appointment, subject, what string) {
	if appt == nil || appt.Patient == nil || appt.Patient.User == nil || appt.Patient.User.Email == "" {
		return
	}
	doctor := "your doctor"
	if appt.Doctor != nil {
		doctor = appt.Doctor.DisplayName()
	}
	when := appt.AppointmentDate.Format(appointmentTimeLayout)

	text := fmt.Sprintf("Hello %s,\n\nYour appointment with %s on %s %s.\n",
		appt.Patient.FullName(), doctor, when, what)
	body := fmt.Sprintf("<p>Hello %s,</p><p>Your appointment with <strong>%s</strong> on <strong>%s</strong> %s.</p>",
		html.EscapeString(appt.Patient.FullName()), html.EscapeString(doctor), when, what)

	to := appt.Patient.User.Email
	if err := n.mailer.Send(to, subject, text, body); err != nil {
		log.Error().Err(err).Str("appointment_id", appt.ID).Str("to", to).Msg("failed to send appointment email")
	}
}
