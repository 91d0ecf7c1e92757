package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/ecw-api/internal/adapter"
	"github.com/MKhiriev/ecw-api/internal/utils"
	"github.com/MKhiriev/ecw-api/models"
	"github.com/alecthomas/kingpin/v2"
)

const (
	cmdWelcome        = "welcome"
	cmdHealth         = "health"
	cmdInfo           = "info"
	cmdPatientsList   = "patients list"
	cmdPatientsGet    = "patients get"
	cmdPatientsCreate = "patients create"
	cmdPatientsUpdate = "patients update"
	cmdPatientsDelete = "patients delete"
)

// idHelp is shared by every command taking a patient id. kingpin reads a
// bare "-5" as a short flag, so negative ids need the "--" separator.
const idHelp = `Patient id. Put "--" before a negative id, e.g. "patients get -- -5".`

type options struct {
	verbose bool

	skip      int
	limit     int
	patientID int64
	data      string
}

// newCLI declares the command tree. Parsed values land in opts.
func newCLI(opts *options, build models.AppBuildInfo) *kingpin.Application {
	cli := kingpin.New("ecw-client", "Command-line probe for a running ECW API. The API address comes from ECW_API_URL.")
	cli.Version(build.String())
	cli.Flag("verbose", "Log every API call.").Short('v').BoolVar(&opts.verbose)

	cli.Command(cmdWelcome, "Show the welcome message.")
	cli.Command(cmdHealth, "Show the health status.").Default()
	cli.Command(cmdInfo, "Show application and runtime details.")

	patients := cli.Command("patients", "Work with patient records.")

	list := patients.Command("list", "List patients.")
	list.Flag("skip", `Number of records to skip. Negative values need "=", e.g. --skip=-1.`).Default("0").IntVar(&opts.skip)
	list.Flag("limit", "Maximum number of records.").Default("10").IntVar(&opts.limit)

	get := patients.Command("get", "Show one patient.")
	get.Arg("id", idHelp).Required().Int64Var(&opts.patientID)

	create := patients.Command("create", "Create a patient.")
	create.Arg("json", "Patient fields as a JSON object.").Default("{}").StringVar(&opts.data)

	update := patients.Command("update", "Update a patient.")
	update.Arg("id", idHelp).Required().Int64Var(&opts.patientID)
	update.Arg("json", "Patient fields as a JSON object.").Default("{}").StringVar(&opts.data)

	del := patients.Command("delete", "Delete a patient.")
	del.Arg("id", idHelp).Required().Int64Var(&opts.patientID)

	return cli
}

// execute runs command against api and prints the result as indented JSON.
func execute(ctx context.Context, command string, opts options, api adapter.APIClient, out io.Writer) error {
	var (
		result any
		err    error
	)

	switch command {
	case cmdWelcome:
		result, err = api.Welcome(ctx)
	case cmdHealth:
		result, err = api.Health(ctx)
	case cmdInfo:
		result, err = api.Info(ctx)
	case cmdPatientsList:
		result, err = api.ListPatients(ctx, opts.skip, opts.limit)
	case cmdPatientsGet:
		result, err = api.GetPatient(ctx, opts.patientID)
	case cmdPatientsCreate:
		var data models.Patient
		if data, err = parsePatient(opts.data); err == nil {
			result, err = api.CreatePatient(ctx, data)
		}
	case cmdPatientsUpdate:
		var data models.Patient
		if data, err = parsePatient(opts.data); err == nil {
			result, err = api.UpdatePatient(ctx, opts.patientID, data)
		}
	case cmdPatientsDelete:
		result, err = api.DeletePatient(ctx, opts.patientID)
	default:
		return fmt.Errorf("unknown command %q", command)
	}
	if err != nil {
		return err
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

func parsePatient(raw string) (models.Patient, error) {
	obj, err := utils.DecodeJSONObject(strings.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("invalid patient JSON: %w", err)
	}
	return models.Patient(obj), nil
}
