package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"motionview/internal/model"
)

var reflector = jsonschema.Reflector{
	AllowAdditionalProperties: true,
	DoNotReference:            true,
}

var schemaCommand = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the backend search response",
	Run: func(cmd *cobra.Command, args []string) {
		schema := reflector.Reflect(&model.SearchResponse{})
		data, err := json.MarshalIndent(schema, "", "  ")
		if err != nil {
			logrus.Fatal(err)
		}
		fmt.Println(string(data))
	},
}
