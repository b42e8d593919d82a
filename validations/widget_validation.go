package validations

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	domainWidget "github.com/floatkit/floatkit/domains/widget"
	pkgError "github.com/floatkit/floatkit/pkg/error"
	"github.com/floatkit/floatkit/widgetengine"
	"github.com/floatkit/floatkit/widgetengine/template"
)

// templateIDRule accepts empty (falls back to the default template) or any
// registered template id.
var templateIDRule = validation.By(func(value any) error {
	id, _ := value.(string)
	if id == "" || template.Exists(id) {
		return nil
	}
	return validation.NewError("validation_template", "must be a registered template id")
})

func ValidateCreateWidget(ctx context.Context, request domainWidget.CreateWidgetRequest) error {
	err := validation.ValidateStructWithContext(ctx, &request,
		validation.Field(&request.Name, validation.Required, validation.Length(1, 120)),
		validation.Field(&request.TemplateID, templateIDRule),
	)
	if err != nil {
		return pkgError.ValidationError(err.Error())
	}

	return validateChannels(request.Config.Channels)
}

func ValidateUpdateWidget(ctx context.Context, request domainWidget.UpdateWidgetRequest) error {
	err := validation.ValidateStructWithContext(ctx, &request,
		validation.Field(&request.Name, validation.Required, validation.Length(1, 120)),
		validation.Field(&request.TemplateID, templateIDRule),
	)
	if err != nil {
		return pkgError.ValidationError(err.Error())
	}

	return validateChannels(request.Config.Channels)
}

func validateChannels(channels []widgetengine.Channel) error {
	for _, ch := range channels {
		if err := validation.ValidateStruct(&ch,
			validation.Field(&ch.Type, validation.Required),
			validation.Field(&ch.Value, validation.Length(0, 500)),
			validation.Field(&ch.Label, validation.Length(0, 120)),
		); err != nil {
			return pkgError.ValidationError(err.Error())
		}
	}
	return nil
}
