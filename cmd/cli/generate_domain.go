package main

// Command: generate_domain.go
//
// Description:
// This CLI command helps automate the creation of a new domain/module within the application
// by generating a directory structure and boilerplate files for a Go domain: dto.go,
// service.go, and controller.go. It prompts the user for a domain name, then generates the
// relevant files with appropriate templates, placing them in domain/<domain>.
//
// Usage:
//   make generate-domain
//   # Then follow the prompt to enter your domain name.

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const domainDir = "domain/"

func GenerateDomain() {
	fmt.Println("Enter the name of your domain please: ")
	scanner := bufio.NewScanner(os.Stdin)
	scanner.Scan()

	domainName := strings.TrimSpace(scanner.Text())

	if domainName == "" {
		fmt.Println("unable to create domain, invalid input")
		return
	}

	domainPath := filepath.Join(domainDir, domainName)

	if _, err := os.Stat(domainPath); !os.IsNotExist(err) {
		fmt.Println("Error: Domain already exists. Ignoring creation.")
		return
	}

	if err := os.MkdirAll(domainPath, os.ModePerm); err != nil {
		fmt.Println("Error creating domain: ", err)
		return
	}

	files := map[string]string{
		"dto.go":        dtoTemplate(domainName),
		"service.go":    serviceTemplate(domainName),
		"controller.go": controllerTemplate(domainName),
	}

	for filename, content := range files {
		filepath := filepath.Join(domainPath, filename)
		if err := os.WriteFile(filepath, []byte(content), 0644); err != nil {
			fmt.Println("Error creating file:", err)
		}
	}

	fmt.Println("✅ Domain", domainName, "created successfully!")
	title := cases.Title(language.English).String(domainName)
	fmt.Println("  ===> Next steps:")
	fmt.Println("   1) Fill in the request/response fields in the generated dto.go")
	fmt.Println("   2) Implement the service logic (and the outbound email, if the domain sends one)")
	fmt.Println("   3) Register the domain controller in domain/main.go's SetupCoreDomain function:")
	fmt.Printf("      appConfig.RouterService.MountController(%s.New%sController(appConfig.Mailer, appConfig.MailAddresses, appConfig.Logger))\n", domainName, title)
}

func serviceTemplate(domain string) string {
	title := cases.Title(language.English).String(domain)
	return fmt.Sprintf(`package %s

import (
	"context"

	"github.com/fairwaylabs/clubsite-api/internal/log"
	"github.com/fairwaylabs/clubsite-api/internal/mail"
	apperrors "github.com/fairwaylabs/clubsite-api/pkg/errors"
)

// %sService defines the business logic layer for the %s domain
type %sService interface {
	// Create handles a new %s request
	Create(ctx context.Context, req *Create%sRequest) (*%sResponse, error)
}

type %sService struct {
	logger *log.Logger
	sender mail.Sender
	addrs  mail.Addresses
}

func New%sService(logger *log.Logger, sender mail.Sender, addrs mail.Addresses) %sService {
	return &%sService{
		logger: logger,
		sender: sender,
		addrs:  addrs,
	}
}

func (s *%sService) Create(ctx context.Context, req *Create%sRequest) (*%sResponse, error) {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	if req == nil {
		logger.Error("Create received empty request")
		return nil, apperrors.NewInvalidRequestError("request cannot be nil", nil)
	}

	// Add business validation logic here

	// Build and deliver the outbound email, for example:
	//   if _, err := s.sender.Send(ctx, &mail.Message{...}); err != nil {
	//       return nil, apperrors.NewMailProviderError("unable to deliver message", err)
	//   }

	return &%sResponse{Success: true}, nil
}
`,
		domain,               // package name
		title, domain, title, // interface comments
		domain, title, title, // Create method
		parseText(domain, false), // struct name
		title, title,             // New function
		title,                                  // constructor return
		parseText(domain, false), title, title, // Create implementation
		title, // Create response
	)
}

func controllerTemplate(domain string) string {
	title := cases.Title(language.English).String(domain)
	return fmt.Sprintf(`package %s

import (
	"github.com/fairwaylabs/clubsite-api/config/router"
	"github.com/fairwaylabs/clubsite-api/internal/log"
	"github.com/fairwaylabs/clubsite-api/internal/mail"
	apperrors "github.com/fairwaylabs/clubsite-api/pkg/errors"
)

// New%sController creates and returns a RESTController for the %s domain
func New%sController(sender mail.Sender, addrs mail.Addresses, logger *log.Logger) *router.RESTController {
	return router.NewRESTController(
		"%sController",
		"/api/%s",
		func(rs *router.RouterService, c *router.RESTController) {
			service := New%sService(logger, sender, addrs)

			// Register handlers
			rs.AddPostHandler(c, nil, "", createHandler(service))
		},
	)
}

func createHandler(service %sService) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		logger := router.GetLogger(ctx)

		var req Create%sRequest
		if err := ctx.ShouldBindJSON(&req); err != nil {
			logger.Error("Failed to bind request", "error", err)

			validationErrors := apperrors.FormatValidationErrors(err, &req)
			if len(validationErrors) > 0 {
				return router.BadRequestResult("Invalid request payload", validationErrors)
			}

			return router.BadRequestResult("Invalid request body", nil)
		}

		response, err := service.Create(ctx.Request.Context(), &req)
		if err != nil {
			return router.ErrorResult(
				apperrors.HTTPStatusCode(err),
				apperrors.GetHumanReadableMessage(err),
				nil,
			)
		}

		return router.OKResult(response, "%s request processed")
	}
}
`,
		domain,               // package name
		title, domain, title, // New controller function
		title, domain, // controller config
		title, // wire up
		title, // createHandler
		title, // Create request
		title, // OKResult
	)
}

func dtoTemplate(domain string) string {
	title := cases.Title(language.English).String(domain)
	return fmt.Sprintf(`package %s

// Create%sRequest defines the structure for a new %s request
type Create%sRequest struct {
	// Add your request fields here with validation tags
	// Example: Email string `+"`json:\"email\" binding:\"required,email\"`"+`
}

// %sResponse defines the structure for %s responses
type %sResponse struct {
	Success bool `+"`json:\"success\"`"+`
	// Add your response fields here
	// Example: MessageID string `+"`json:\"id,omitempty\"`"+`
}
`,
		domain,               // 1: package name
		title, domain, title, // 2-4: Create request comment and type
		title, domain, title, // 5-7: Response comment and type
	)
}

func parseText(text string, capitalize bool) string {
	if len(text) == 0 {
		return text
	}

	first := string(text[0])
	rest := text[1:]

	if capitalize {
		return strings.ToUpper(first) + rest
	}
	return strings.ToLower(first) + rest
}
