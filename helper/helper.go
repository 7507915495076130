package helper

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/BestDev/unreal-blueprint-mcp/client"
	"github.com/BestDev/unreal-blueprint-mcp/format"
	"github.com/BestDev/unreal-blueprint-mcp/schema"
	"github.com/jessevdk/go-flags"
)

// ErrFailed reports that the helper printed an error and should exit with a non zero status
var ErrFailed = errors.New("helper failed")

// Run parses args, performs a single call and writes the rendering to stdout
func Run(args []string, stdout io.Writer) error {
	options := &Options{}
	parser := flags.NewParser(options, flags.Default)
	parser.Usage = "[OPTIONS] METHOD [PARAMS_JSON]"
	if _, err := parser.ParseArgs(args); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			return nil
		}
		return err
	}
	options.Init()
	if options.ListMethods {
		printMethods(stdout)
		return nil
	}
	if options.Args.Method == "" {
		fmt.Fprintln(stdout, "❌ Error: Method name is required")
		fmt.Fprintln(stdout, "\nUse --list-methods to see available methods")
		fmt.Fprintln(stdout, "Example: unreal-helper ping")
		return ErrFailed
	}
	var params interface{}
	if options.Args.Params != "" {
		var decoded interface{}
		if err := json.Unmarshal([]byte(options.Args.Params), &decoded); err != nil {
			fmt.Fprintf(stdout, "❌ Error: Invalid JSON parameters: %v\n", err)
			fmt.Fprintf(stdout, "   Parameters: %v\n", options.Args.Params)
			return ErrFailed
		}
		params = json.RawMessage(options.Args.Params)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	cli := client.New(options.Server, client.WithTimeout(options.Timeout), client.WithTimestampIDs())
	defer cli.Close()

	response := cli.Invoke(ctx, options.Args.Method, params)
	if ctx.Err() != nil {
		fmt.Fprintln(stdout, "\n❌ Operation cancelled by user")
		return ErrFailed
	}
	if options.Raw {
		data, err := json.MarshalIndent(response, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, string(data))
		return nil
	}
	fmt.Fprintln(stdout, format.Format(response, options.Args.Method))
	return nil
}

func printMethods(w io.Writer) {
	builder := strings.Builder{}
	builder.WriteString("Available Methods:\n==================\n")
	current := format.Unknown
	for _, method := range schema.Methods {
		if namespace := format.ParseNamespace(method.Name); namespace != current {
			current = namespace
			builder.WriteString("\n" + namespace.String() + ":\n")
		}
		builder.WriteString(fmt.Sprintf("  %-26v - %v\n", method.Name, method.Description))
	}
	builder.WriteString("\nExamples:\n=========\n")
	builder.WriteString("unreal-helper ping\n")
	builder.WriteString("unreal-helper getBlueprints\n")
	builder.WriteString(`unreal-helper tools.create_blueprint '{"name":"BP_Test","path":"/Game/Test","parent_class":"Actor"}'` + "\n")
	builder.WriteString(`unreal-helper resources.list '{"path":"/Game/Blueprints"}'` + "\n")
	fmt.Fprint(w, builder.String())
}
