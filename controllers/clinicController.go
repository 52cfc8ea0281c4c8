package controllers

import (
	"CarePortal/handlers"
	"CarePortal/middlewares"

	"github.com/gin-gonic/gin"
)

// SetupClinicRoutes mounts the appointment, profile and clinical routes. All of them need a
// session; the services decide what each role may see or change.
func SetupClinicRoutes(
	router *gin.Engine,
	appointmentHandler *handlers.AppointmentHandler,
	doctorHandler *handlers.DoctorHandler,
	patientHandler *handlers.PatientHandler,
	medicalRecordHandler *handlers.MedicalRecordHandler,
	prescriptionHandler *handlers.PrescriptionHandler,
) {
	clinic := router.Group("", middlewares.RequireAuth())

	clinic.GET("/appointments", appointmentHandler.GetAllAppointments)
	clinic.POST("/appointments", appointmentHandler.CreateAppointment)
	clinic.GET("/appointments/mine", appointmentHandler.GetMyAppointments)
	clinic.GET("/appointments/calendar", appointmentHandler.GetCalendar)
	clinic.GET("/appointments/:id", appointmentHandler.GetAppointmentByID)
	clinic.PUT("/appointments/:id", appointmentHandler.UpdateAppointment)
	clinic.DELETE("/appointments/:id", appointmentHandler.DeleteAppointment)
	clinic.POST("/appointments/:id/cancel", appointmentHandler.CancelAppointment)
	clinic.POST("/appointments/:id/complete", appointmentHandler.CompleteAppointment)

	clinic.GET("/doctors", doctorHandler.GetAllDoctors)
	clinic.POST("/doctors", doctorHandler.CreateDoctor)
	clinic.GET("/doctors/me", doctorHandler.GetMyProfile)
	clinic.GET("/doctors/:id", doctorHandler.GetDoctorByID)
	clinic.PUT("/doctors/:id", doctorHandler.UpdateDoctor)

	clinic.GET("/patients", patientHandler.GetAllPatients)
	clinic.POST("/patients", patientHandler.CreatePatient)
	clinic.GET("/patients/:id", patientHandler.GetPatientByID)
	clinic.PUT("/patients/:id", patientHandler.UpdatePatient)

	clinic.GET("/medical-records", medicalRecordHandler.GetAllMedicalRecords)
	clinic.POST("/medical-records", medicalRecordHandler.CreateMedicalRecord)
	clinic.GET("/medical-records/mine", medicalRecordHandler.GetMyMedicalRecords)
	clinic.GET("/medical-records/new", medicalRecordHandler.GetPendingAppointments)
	clinic.GET("/medical-records/:id", medicalRecordHandler.GetMedicalRecordByID)
	clinic.PUT("/medical-records/:id", medicalRecordHandler.UpdateMedicalRecord)

	clinic.GET("/prescriptions", prescriptionHandler.GetAllPrescriptions)
	clinic.POST("/prescriptions", prescriptionHandler.CreatePrescription)
	clinic.GET("/prescriptions/mine", prescriptionHandler.GetMyPrescriptions)
	clinic.GET("/prescriptions/new", prescriptionHandler.GetPrescribableRecords)
	clinic.GET("/prescriptions/:id", prescriptionHandler.GetPrescriptionByID)
	clinic.GET("/prescriptions/:id/print", prescriptionHandler.PrintPrescription)
	clinic.PUT("/prescriptions/:id", prescriptionHandler.UpdatePrescription)
	clinic.DELETE("/prescriptions/:id", prescriptionHandler.DeletePrescription)
}
