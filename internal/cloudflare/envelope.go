package cloudflare

// apiResponse is the uniform envelope every v4 API endpoint returns.
// Result is a pointer so "success with no body" is distinguishable from
// a present zero value; ResultInfo is only populated by list endpoints.
type apiResponse[T any] struct {
	Success    bool            `json:"success"`
	Result     *T              `json:"result"`
	Errors     []responseError `json:"errors"`
	ResultInfo *resultInfo     `json:"result_info"`
}

type responseError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type resultInfo struct {
	Page       int `json:"page"`
	PerPage    int `json:"per_page"`
	Count      int `json:"count"`
	TotalCount int `json:"total_count"`
	TotalPages int `json:"total_pages"`
}

// firstErrorMessage is what an APIError surfaces: the first reported
// error's text, or the empty string when the server claimed failure
// without reporting any errors.
func (r *apiResponse[T]) firstErrorMessage() string {
	if len(r.Errors) == 0 {
		return ""
	}
	return r.Errors[0].Message
}

type tokenVerifyResult struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type deleteResult struct {
	ID string `json:"id"`
}
