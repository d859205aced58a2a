package complaint

type SubmitComplaintRequest struct {
	UserID      int64  `json:"user_id"`
	Username    string `json:"username"`
	Subject     string `json:"subject" binding:"required"`
	Description string `json:"description" binding:"required"`
	Type        string `json:"complaint_type" binding:"required"`
	EntityName  string `json:"entity_name" binding:"required"`
	EntityID    int64  `json:"entity_id"`
}

type UpdateStatusRequest struct {
	Status   string `json:"status" binding:"required"`
	Response string `json:"response"`
}
