package heroku

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"sort"

	"github.com/convox/migrate/pkg/structs"
	"github.com/convox/stdsdk"
	"github.com/pkg/errors"
)

func (c *Client) AppGet(app string) (*structs.App, error) {
	var a *structs.App

	if err := c.roundtrip("GET", fmt.Sprintf("/apps/%s", app), stdsdk.RequestOptions{}, &a); err != nil {
		return nil, err
	}

	return a, nil
}

func (c *Client) FormationGet(app string) (structs.Formation, error) {
	var f structs.Formation

	if err := c.roundtrip("GET", fmt.Sprintf("/apps/%s/formation", app), stdsdk.RequestOptions{}, &f); err != nil {
		return nil, err
	}

	return f, nil
}

// FormationScale patches every process type in counts to its given
// quantity and returns the formation confirmed by the platform. An empty
// counts map sends an empty update list, which the platform accepts.
func (c *Client) FormationScale(app string, counts map[string]int) (structs.Formation, error) {
	types := make([]string, 0, len(counts))

	for t := range counts {
		types = append(types, t)
	}

	sort.Strings(types)

	updates := make(structs.Formation, 0, len(types))

	for _, t := range types {
		updates = append(updates, structs.ProcessFormation{Type: t, Quantity: counts[t]})
	}

	ro, err := jsonOptions(map[string]interface{}{"updates": updates})
	if err != nil {
		return nil, err
	}

	var f structs.Formation

	if err := c.roundtrip("PATCH", fmt.Sprintf("/apps/%s/formation", app), ro, &f); err != nil {
		return nil, err
	}

	return f, nil
}

func (c *Client) MaintenanceSet(app string, enabled bool) (*structs.App, error) {
	ro, err := jsonOptions(map[string]interface{}{"maintenance": enabled})
	if err != nil {
		return nil, err
	}

	var a *structs.App

	if err := c.roundtrip("PATCH", fmt.Sprintf("/apps/%s", app), ro, &a); err != nil {
		return nil, err
	}

	return a, nil
}

func (c *Client) roundtrip(method, path string, opts stdsdk.RequestOptions, out interface{}) error {
	log := c.log.At("request").Namespace("method=%s path=%q", method, path).Start()

	req, err := c.Request(method, path, opts)
	if err != nil {
		return errors.WithStack(err)
	}

	res, err := stdsdk.DefaultClient.Do(req)
	if err != nil {
		return log.Error(errors.WithStack(err))
	}

	defer res.Body.Close()

	if err := responseError(res); err != nil {
		return log.Error(err)
	}

	log.Successf("status=%d", res.StatusCode)

	if out == nil {
		return nil
	}

	data, err := ioutil.ReadAll(res.Body)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(json.Unmarshal(data, out))
}

func jsonOptions(payload interface{}) (stdsdk.RequestOptions, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return stdsdk.RequestOptions{}, errors.WithStack(err)
	}

	return stdsdk.RequestOptions{Body: bytes.NewReader(data)}, nil
}
