package form

import internalform "github.com/goliatone/go-adminforms/internal/form"

// InputType re-exports the internal input-kind enumeration.
type InputType = internalform.InputType

const (
	InputText     = internalform.InputText
	InputEmail    = internalform.InputEmail
	InputURL      = internalform.InputURL
	InputNumber   = internalform.InputNumber
	InputDate     = internalform.InputDate
	InputCheckbox = internalform.InputCheckbox
	InputSelect   = internalform.InputSelect
	InputTextarea = internalform.InputTextarea
	InputFile     = internalform.InputFile
)

type FieldConfig = internalform.FieldConfig
type Override = internalform.Override
type Overrides = internalform.Overrides
