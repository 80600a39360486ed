package handlers

import "fmt"

// Notice is the human-readable summary of a completed action, rendered by
// the list page after the redirect.
type Notice struct {
	Message string `json:"message"`
	Class   string `json:"class"`
}

// Notice CSS classes.
const (
	NoticeSuccess = "notice-success"
	NoticeWarning = "notice-warning"
)

// successMessages maps a success action to its singular and plural message
// templates, chosen by the processed count.
var successMessages = map[string][2]string{
	ActionActivate:   {"%d relationship activated.", "%d relationships activated."},
	ActionDeactivate: {"%d relationship deactivated.", "%d relationships deactivated."},
	ActionDelete:     {"%d relationship deleted.", "%d relationships deleted."},
	ActionAdd:        {"%d relationship added.", "%d relationships added."},
	ActionEdit:       {"%d relationship updated.", "%d relationships updated."},
}

// failureMessages maps an error code to its message.
var failureMessages = map[string]string{
	"create_failed":  "Create failed.",
	"update_failed":  "Update failed.",
	"delete_failed":  "Delete failed.",
	"not_found":      "Relationship not found.",
	"invalid_status": "Invalid relationship status.",
}

// BuildNotice renders the notice for a did_action symbol and the processed
// ids that came back with it. Returns nil for symbols it has no message for,
// in which case the page renders nothing.
func BuildNotice(didAction string, processed []int64) *Notice {
	count := len(processed)

	if templates, ok := successMessages[didAction]; ok {
		tmpl := templates[0]
		if count != 1 {
			tmpl = templates[1]
		}
		return &Notice{
			Message: fmt.Sprintf(tmpl, count),
			Class:   NoticeSuccess,
		}
	}

	if msg, ok := failureMessages[didAction]; ok {
		return &Notice{
			Message: msg,
			Class:   NoticeWarning,
		}
	}

	return nil
}
