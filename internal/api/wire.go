package api

// Request and response bodies as the service defines them. Diary entries
// themselves decode straight into models.Diary.

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type createDiaryRequest struct {
	UserID int    `json:"user_id"`
	Title  string `json:"title"`
	Body   string `json:"diary_user"`
}

type updateDiaryRequest struct {
	ID     int    `json:"id_diary"`
	UserID int    `json:"user_id"`
	Title  string `json:"title"`
	Body   string `json:"diary_user"`
}

type errorResponse struct {
	Error string `json:"error"`
}
