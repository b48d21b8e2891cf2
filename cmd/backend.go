package cmd

import (
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/spf13/cobra"

	"github.com/arcanaland/shuffledraw/internal/drawsvc"
)

// CloudFront distribution serving the card images in the hosted service
const imageBaseURLEnv = "CLOUDFRONT_URL"

var backendCmd = &cobra.Command{
	Use:   "backend",
	Short: "Run a local tarot draw service",
	Long: `Backend runs a draw service that shuffles and deals cards, answering
POST /draw the way the hosted service does. Point the client at it with
--api-url (it listens on the client's default, port 3000).

Card image URLs are built as <image-base-url>/images/<file>; the base
defaults to $CLOUDFRONT_URL.

With --lambda (or when started by the AWS Lambda runtime) the same handler
is served to API Gateway HTTP API events instead of a TCP port.`,
	Example: `  # Serve draws on port 3000
  shuffledraw backend --image-base-url https://d1234.cloudfront.net

  # Run as an AWS Lambda function
  shuffledraw backend --lambda`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		imageBaseURL, _ := cmd.Flags().GetString("image-base-url")
		if imageBaseURL == "" {
			imageBaseURL = os.Getenv(imageBaseURLEnv)
		}
		if imageBaseURL == "" {
			slog.Warn("No image base URL set; card images will be relative", "env", imageBaseURLEnv)
		}
		allowOrigin, _ := cmd.Flags().GetString("allow-origin")

		svc := drawsvc.New(drawsvc.Options{
			ImageBaseURL: imageBaseURL,
			AllowOrigin:  allowOrigin,
		})

		runLambda, _ := cmd.Flags().GetBool("lambda")
		if runLambda || os.Getenv("AWS_LAMBDA_RUNTIME_API") != "" {
			slog.Info("Starting Lambda handler")
			lambda.StartWithOptions(drawsvc.NewLambdaHandler(svc.Routes()).Handle, lambda.WithContext(cmd.Context()))
			return nil
		}

		port, _ := cmd.Flags().GetString("port")
		return runServer(cmd.Context(), "Tarot draw service", ":"+port, svc.Routes())
	},
}

func init() {
	RootCmd.AddCommand(backendCmd)

	backendCmd.Flags().StringP("port", "p", "3000", "Port to listen on")
	backendCmd.Flags().String("image-base-url", "", "Base URL of the card images (default $"+imageBaseURLEnv+")")
	backendCmd.Flags().String("allow-origin", "*", "Access-Control-Allow-Origin sent with every response")
	backendCmd.Flags().Bool("lambda", false, "Serve AWS Lambda API Gateway events instead of HTTP")
}
