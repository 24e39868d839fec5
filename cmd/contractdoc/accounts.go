package main

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/contractkit/handler"
	"github.com/dmitrymomot/contractkit/pkg/contract"
	"github.com/dmitrymomot/contractkit/pkg/lens"
	"github.com/dmitrymomot/contractkit/pkg/message"
	"github.com/dmitrymomot/contractkit/pkg/requestid"
)

var (
	accountID = lens.UUID(lens.Path).Required("id", lens.WithDescription("account id"))
	pageSize  = lens.Int(lens.Query).Optional("limit", lens.WithDescription("page size"))

	email    = lens.FormField.Required("email")
	age      = lens.Int(lens.FormField).Required("age")
	newsFlag = lens.Bool(lens.FormField).Optional("newsletter")
	signup   = lens.WebFormBody(lens.Feedback, email, age, newsFlag)

	accountLocation = lens.Header.Required("Location")
)

// accounts builds the example contract printed by the command.
func accounts(title, version string, log *slog.Logger, opts ...contract.Option) (*contract.Contract, error) {
	opts = append([]contract.Option{
		contract.WithDescription("Example contract built from lenses"),
		contract.WithLogger(log),
	}, opts...)
	c := contract.New(title, version, opts...)

	err := c.Add(
		contract.Route{
			Method:  http.MethodGet,
			Path:    "/accounts/{id}",
			ID:      "getAccount",
			Summary: "Fetch an account",
			Checks:  []lens.Checker[message.Message]{accountID, requestid.Lens},
			Handler: getAccount,
		},
		contract.Route{
			Method:  http.MethodGet,
			Path:    "/accounts",
			ID:      "listAccounts",
			Summary: "List accounts",
			Checks:  []lens.Checker[message.Message]{pageSize, requestid.Lens},
			Handler: listAccounts,
		},
		contract.Route{
			Method:      http.MethodPost,
			Path:        "/accounts",
			ID:          "signup",
			Summary:     "Create an account",
			Description: "Invalid fields are echoed back with their failures.",
			Checks:      []lens.Checker[message.Message]{signup, requestid.Lens},
			Responses: []contract.Response{
				{Status: http.StatusCreated, Checks: []lens.Checker[message.Message]{accountLocation}},
				{Status: http.StatusUnprocessableEntity, Description: "Form has invalid fields"},
			},
			Handler: createAccount,
		},
	)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func getAccount(_ context.Context, req message.Message) (message.Message, error) {
	id, err := accountID.Extract(req)
	if err != nil {
		return message.Message{}, err
	}
	return handler.JSON(map[string]string{"id": id.String()})
}

func listAccounts(_ context.Context, req message.Message) (message.Message, error) {
	limit, err := pageSize.Extract(req)
	if err != nil {
		return message.Message{}, err
	}
	n := 20
	if limit != nil {
		n = *limit
	}
	return handler.JSON([]string{}, handler.WithJSONMeta(map[string]any{"limit": n}))
}

func createAccount(_ context.Context, req message.Message) (message.Message, error) {
	form, err := signup.Extract(req)
	if err != nil {
		return message.Message{}, err
	}
	if !form.Valid() {
		return handler.JSONError(lens.NewContractBreach(form.Errors()...),
			handler.WithJSONStatus(http.StatusUnprocessableEntity)), nil
	}

	addr, err := email.Extract(form)
	if err != nil {
		return message.Message{}, err
	}
	resp, err := handler.JSON(map[string]string{"email": addr}, handler.WithJSONStatus(http.StatusCreated))
	if err != nil {
		return message.Message{}, err
	}
	return lens.With(resp, accountLocation.Of("/accounts/"+addr)), nil
}
