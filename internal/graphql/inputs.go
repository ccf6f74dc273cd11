package graphql

import (
	"strconv"

	"critterbook/internal/domain"
)

// Typed inputs, one per operation. Arguments leave the resolver layer only
// after landing in one of these, so loosely-typed argument maps never reach
// store logic.

type credentialsInput struct {
	Username string
	Password string
}

type animalInput struct {
	FirstName string
	Type      string
	Accessory *string
}

type noteInput struct {
	Title       string
	TextContent string
}

func credentialsInputFromArgs(args map[string]interface{}) (credentialsInput, error) {
	username, err := requiredString(args, "username")
	if err != nil {
		return credentialsInput{}, err
	}
	password, err := requiredString(args, "password")
	if err != nil {
		return credentialsInput{}, err
	}
	return credentialsInput{Username: username, Password: password}, nil
}

func animalInputFromArgs(args map[string]interface{}) (animalInput, error) {
	firstName, err := requiredString(args, "firstName")
	if err != nil {
		return animalInput{}, err
	}
	animalType, err := requiredString(args, "type")
	if err != nil {
		return animalInput{}, err
	}
	return animalInput{
		FirstName: firstName,
		Type:      animalType,
		Accessory: optionalString(args, "accessory"),
	}, nil
}

func (in animalInput) fields() domain.AnimalFields {
	return domain.AnimalFields{
		FirstName: in.FirstName,
		Type:      in.Type,
		Accessory: in.Accessory,
	}
}

func noteInputFromArgs(args map[string]interface{}) (noteInput, error) {
	title, err := requiredString(args, "title")
	if err != nil {
		return noteInput{}, err
	}
	textContent, err := requiredString(args, "textContent")
	if err != nil {
		return noteInput{}, err
	}
	return noteInput{Title: title, TextContent: textContent}, nil
}

// requiredString rejects absent, non-string, and empty values alike.
func requiredString(args map[string]interface{}, name string) (string, error) {
	value, ok := args[name].(string)
	if !ok || value == "" {
		return "", domain.ErrRequiredFieldMissing
	}
	return value, nil
}

// optionalString normalizes an absent or empty value to nil so it is
// persisted as NULL, never as "".
func optionalString(args map[string]interface{}, name string) *string {
	value, ok := args[name].(string)
	if !ok || value == "" {
		return nil
	}
	return &value
}

// idFromArgs parses the ID! argument. GraphQL serializes IDs as strings; a
// value that does not parse to a positive integer is malformed input.
func idFromArgs(args map[string]interface{}) (int64, error) {
	switch v := args["id"].(type) {
	case string:
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil || id <= 0 {
			return 0, domain.ErrRequiredFieldMissing
		}
		return id, nil
	case int:
		if v <= 0 {
			return 0, domain.ErrRequiredFieldMissing
		}
		return int64(v), nil
	default:
		return 0, domain.ErrRequiredFieldMissing
	}
}
