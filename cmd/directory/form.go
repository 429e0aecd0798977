package main

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/charmbracelet/huh"

	"github.com/Raymond9734/profile-directory/internal/admin"
	"github.com/Raymond9734/profile-directory/internal/validation"
)

var fieldLabels = map[string]string{
	"name":        "Name",
	"role":        "Role",
	"image":       "Image URL",
	"description": "Description",
	"email":       "Email",
	"phone":       "Phone",
	"website":     "Website",
	"address":     "Address",
	"city":        "City",
	"state":       "State",
	"zipCode":     "Zip Code",
	"latitude":    "Latitude",
	"longitude":   "Longitude",
	"skills":      "Skills (comma separated)",
	"interests":   "Interests (comma separated)",
}

// formGroups splits the profile form into pages
var formGroups = [][]string{
	{"name", "role", "image", "description"},
	{"email", "phone", "website"},
	{"address", "city", "state", "zipCode", "latitude", "longitude"},
	{"skills", "interests"},
}

// editProfile runs the add/edit form until it submits cleanly or the user aborts.
// Every keystroke goes through the panel, so field errors show inline.
func editProfile(w io.Writer, panel *admin.Panel, submit func() error) error {
	for {
		if err := runProfileForm(panel); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return panel.Cancel()
			}
			return err
		}

		err := submit()
		var fieldErrs validation.FieldErrors
		if errors.As(err, &fieldErrs) {
			printFieldErrors(w, fieldErrs)
			continue
		}
		return err
	}
}

func runProfileForm(panel *admin.Panel) error {
	current := panel.Form()
	values := make(map[string]*string, len(validation.Fields))

	groups := make([]*huh.Group, 0, len(formGroups))
	for _, names := range formGroups {
		fields := make([]huh.Field, 0, len(names))
		for _, name := range names {
			v, _ := current.Get(name)
			values[name] = &v
			fields = append(fields, formField(panel, name, &v))
		}
		groups = append(groups, huh.NewGroup(fields...))
	}

	if err := huh.NewForm(groups...).Run(); err != nil {
		return err
	}

	// Fields the user never touched were not validated by huh
	for name, v := range values {
		_ = panel.SetField(name, *v)
	}
	return nil
}

func formField(panel *admin.Panel, name string, value *string) huh.Field {
	validate := func(s string) error {
		return panel.SetField(name, s)
	}
	if name == "description" {
		return huh.NewText().Title(fieldLabels[name]).Value(value).Validate(validate)
	}
	return huh.NewInput().Title(fieldLabels[name]).Value(value).Validate(validate)
}

func printFieldErrors(w io.Writer, errs validation.FieldErrors) {
	names := make([]string, 0, len(errs))
	for name := range errs {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "%s %s\n", errorStyle.Render(fieldLabels[name]+":"), errs[name])
	}
}
