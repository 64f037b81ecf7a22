package request

type ConfirmReservationRequest struct {
	SessionID string `json:"sessionId" binding:"required,max=128"`
	VehicleID int64  `json:"vehicleId" binding:"required,gt=0"`
}
