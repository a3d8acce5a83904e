package response

type MutationResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ID      int64  `json:"id,omitempty"`
}

func Mutation(msg string, id int64) MutationResponse {
	return MutationResponse{Success: true, Message: msg, ID: id}
}
