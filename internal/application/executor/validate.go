package executor

import (
	"github.com/SargeyWargey/documentation-generator-sub000/internal/domain"
)

// validate checks the generation input before any file is written.
// All missing required variables are reported together so the caller
// can fix them in one pass.
func validate(gen domain.GenerationContext) error {
	if gen.Template.Name == "" {
		return &domain.ValidationError{Reason: "template name is required"}
	}
	if gen.Template.Description == "" {
		return &domain.ValidationError{Reason: "template description is required"}
	}
	var missing []string
	for _, v := range gen.Template.Variables {
		if !v.Required {
			continue
		}
		if value, ok := gen.Variables[v.Name]; !ok || value == "" {
			missing = append(missing, v.Name)
		}
	}
	if len(missing) > 0 {
		return &domain.ValidationError{Missing: missing}
	}
	return nil
}
