package response

// MessageResponse is the body of operations that only acknowledge success.
type MessageResponse struct {
	Message string `json:"message"`
}

type CategoriesResponse struct {
	Categories []string `json:"categories"`
}

// NonNil keeps empty listings encoded as [] instead of null.
func NonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
