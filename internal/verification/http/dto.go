package http

type IssueCodeRequest struct {
	Channel string `json:"channel" binding:"required,oneof=email sms"`
}

type CheckCodeRequest struct {
	Channel string `json:"channel" binding:"required,oneof=email sms"`
	Code    string `json:"code" binding:"required,len=6"`
}
