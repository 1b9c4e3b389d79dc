package scm

import "encoding/json"

// Resource is the base structure for all configuration objects. The id is
// server-assigned; the client never invents one.
type Resource struct {
	ID string `json:"id,omitempty" yaml:"id,omitempty"`
}

// ListResponse is the envelope every listing endpoint returns.
type ListResponse[T any] struct {
	Data   []T `json:"data"   yaml:"data"`
	Limit  int `json:"limit"  yaml:"limit"`
	Offset int `json:"offset" yaml:"offset"`
	Total  int `json:"total"  yaml:"total"`
}

// Job represents a server-side asynchronous unit of work, typically a
// candidate-configuration push.
type Job struct {
	ID          string `json:"id"                    yaml:"id"`
	Type        string `json:"type_str"              yaml:"type_str"`
	Status      string `json:"status_str"            yaml:"status_str"`
	Result      string `json:"result_str,omitempty"  yaml:"result_str,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Owner       string `json:"uname,omitempty"       yaml:"uname,omitempty"`
	ParentID    string `json:"parent_id,omitempty"   yaml:"parent_id,omitempty"`
	Percent     string `json:"percent,omitempty"     yaml:"percent,omitempty"`
	StartTime   string `json:"start_ts,omitempty"    yaml:"start_ts,omitempty"`
	EndTime     string `json:"end_ts,omitempty"      yaml:"end_ts,omitempty"`
	Summary     string `json:"summary,omitempty"     yaml:"summary,omitempty"`
	Details     string `json:"details,omitempty"     yaml:"details,omitempty"`
}

// Done reports whether the job reached a terminal state.
func (j *Job) Done() bool {
	return j.Status == "FIN"
}

// Succeeded reports whether the job finished with an OK result.
func (j *Job) Succeeded() bool {
	return j.Done() && j.Result == "OK"
}

// Failed reports whether the job finished with a FAIL result.
func (j *Job) Failed() bool {
	return j.Done() && j.Result == "FAIL"
}

// CommitRequest describes a candidate-configuration push.
type CommitRequest struct {
	// Folders scopes the push; at least one is required.
	Folders []string `json:"folders"               yaml:"folders"               validate:"required,min=1,dive,required"`
	// Description is required by the API and shows up in the job listing.
	Description string `json:"description"         yaml:"description"           validate:"required"`
	// Admin restricts the push to specific administrators' changes. Nil
	// means the server default (the authenticated admin).
	Admin *AdminScope `json:"admin,omitempty"      yaml:"admin,omitempty"`
	// DeviceGroups optionally narrows the push to specific device groups.
	DeviceGroups []string `json:"device_groups,omitempty" yaml:"device_groups,omitempty"`
}

// Validate checks the request client-side before submission: the server
// rejects a push without folders or a description, so fail fast here.
func (r *CommitRequest) Validate() error {
	return validateStruct(r)
}

// CommitResponse is the synchronous reply to a commit submission; the
// actual push is tracked through the returned job.
type CommitResponse struct {
	Success bool   `json:"success"           yaml:"success"`
	JobID   string `json:"job_id"            yaml:"job_id"`
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
}

// AdminScope selects whose changes a commit includes. The wire shape
// distinguishes "all administrators" (the JSON string "all") from a list of
// admin names -- including a single admin literally named "all", which is
// sent as a one-element array.
type AdminScope struct {
	all    bool
	admins []string
}

// AllAdmins scopes a commit to every administrator's changes.
func AllAdmins() *AdminScope {
	return &AdminScope{all: true}
}

// Admins scopes a commit to the named administrators.
func Admins(names ...string) *AdminScope {
	return &AdminScope{admins: names}
}

// All reports whether the scope covers every administrator.
func (s *AdminScope) All() bool {
	return s.all
}

// Names returns the named administrators, or nil for an all-admins scope.
func (s *AdminScope) Names() []string {
	if s.all {
		return nil
	}

	return s.admins
}

// MarshalJSON implements json.Marshaler.
func (s *AdminScope) MarshalJSON() ([]byte, error) {
	if s.all {
		return json.Marshal("all")
	}

	return json.Marshal(s.admins)
}

// UnmarshalJSON implements json.Unmarshaler, accepting either the "all"
// string or an array of names.
func (s *AdminScope) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		if str != "all" {
			return NewInvalidObjectError("admin scope string must be \"all\"")
		}

		s.all = true
		s.admins = nil

		return nil
	}

	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return err
	}

	s.all = false
	s.admins = names

	return nil
}
