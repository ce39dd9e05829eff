package http

// chatRequest mirrors the front's chat call: a question plus the notice
// the user is reading (absent on the general chat page).
type chatRequest struct {
	Message  string `json:"message"`
	NoticeNo string `json:"noticeNo,omitempty"`
}

type chatResponse struct {
	Message string `json:"message"`
}

type summaryRequest struct {
	Title string `json:"title"`
}

type summaryResponse struct {
	Summary string `json:"summary"`
}
