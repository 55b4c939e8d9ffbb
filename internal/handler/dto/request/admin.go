package request

type UpsertIntegrationRequest struct {
	EndpointURL string `json:"endpoint_url" binding:"required,url"`
	AuthToken   string `json:"auth_token" binding:"omitempty,max=512"`
}

type ImportHolidaysRequest struct {
	Year int `json:"year" binding:"required"`
}
