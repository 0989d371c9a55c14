package main

import (
	"flag"
	"fmt"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	// Global flags
	apiURL := "http://localhost:8080"
	if envURL := os.Getenv("API_URL"); envURL != "" {
		apiURL = envURL
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "content":
		contentCmd(apiURL, args)
	case "traffic":
		trafficCmd(apiURL, args)
	case "watch":
		watchCmd(apiURL, args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`Site Simulator - Development tool for populating demo data

USAGE:
  simulator <command> [options]

COMMANDS:
  content   Create demo tours, testimonials and contact messages
  traffic   Simulate visitor traffic against the analytics tracker
  watch     Stream live visit events to the terminal (admin)
  help      Show this help message

ENVIRONMENT:
  API_URL         Backend API URL (default: http://localhost:8080)
  ADMIN_EMAIL     Admin login for content and watch commands
  ADMIN_PASSWORD  Admin password

EXAMPLES:
  # Fill the site with demo content
  simulator content

  # Fire 50 fake visits with varied devices and countries
  simulator traffic --count=50

  # Watch visits arrive in real time
  simulator watch`)
}

func adminLogin(client *APIClient) string {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		fmt.Println("Error: ADMIN_EMAIL and ADMIN_PASSWORD must be set")
		os.Exit(1)
	}

	token, err := client.Login(email, password)
	if err != nil {
		fmt.Printf("Login failed: %v\n", err)
		os.Exit(1)
	}
	return token
}

func contentCmd(apiURL string, args []string) {
	fs := flag.NewFlagSet("content", flag.ExitOnError)
	tourCount := fs.Int("tours", 6, "Number of demo tours to create")
	fs.Parse(args)

	client := NewAPIClient(apiURL)
	token := adminLogin(client)

	fmt.Println("=== Site Simulator: Demo Content ===")
	fmt.Println()

	fmt.Printf("Creating %d tours:\n", *tourCount)
	for i := 0; i < *tourCount; i++ {
		tour := demoTours[i%len(demoTours)]
		if i >= len(demoTours) {
			tour.Title = fmt.Sprintf("%s %d", tour.Title, i/len(demoTours)+1)
		}

		created, err := client.CreateTour(token, tour)
		if err != nil {
			fmt.Printf("  [%d/%d] FAILED: %v\n", i+1, *tourCount, err)
			continue
		}
		fmt.Printf("  [%d/%d] %s (%s)\n", i+1, *tourCount, created.Title, created.Price)
	}

	fmt.Println()
	fmt.Printf("Creating %d testimonials:\n", len(demoTestimonials))
	for i, testimonial := range demoTestimonials {
		if err := client.CreateTestimonial(testimonial); err != nil {
			fmt.Printf("  [%d/%d] FAILED: %v\n", i+1, len(demoTestimonials), err)
			continue
		}
		fmt.Printf("  [%d/%d] %s (%s)\n", i+1, len(demoTestimonials), testimonial.FullName, testimonial.Country)
	}

	fmt.Println()
	fmt.Printf("Creating %d contact messages:\n", len(demoContacts))
	for i, contact := range demoContacts {
		if err := client.CreateContact(contact); err != nil {
			fmt.Printf("  [%d/%d] FAILED: %v\n", i+1, len(demoContacts), err)
			continue
		}
		fmt.Printf("  [%d/%d] %s\n", i+1, len(demoContacts), contact.Name)
	}

	fmt.Println()
	fmt.Println("Done!")
}

func trafficCmd(apiURL string, args []string) {
	fs := flag.NewFlagSet("traffic", flag.ExitOnError)
	count := fs.Int("count", 25, "Number of visits to simulate")
	fs.Parse(args)

	client := NewAPIClient(apiURL)

	fmt.Printf("Simulating %d visits...\n\n", *count)

	tracked := 0
	for i := 0; i < *count; i++ {
		visit := randomVisit(i)
		counted, err := client.TrackVisit(visit)
		if err != nil {
			fmt.Printf("  [%d/%d] FAILED: %v\n", i+1, *count, err)
			continue
		}
		if counted {
			tracked++
		}
		fmt.Printf("  [%d/%d] %s from %s (%s)\n", i+1, *count, visit.Device, visit.Country, visit.IP)
	}

	fmt.Println()
	fmt.Printf("Done! %d of %d visits counted as new visitors.\n", tracked, *count)
}

func watchCmd(apiURL string, args []string) {
	flag.NewFlagSet("watch", flag.ExitOnError).Parse(args)

	client := NewAPIClient(apiURL)
	token := adminLogin(client)

	fmt.Println("Watching live visits (Ctrl-C to stop)...")
	fmt.Println()

	if err := client.WatchVisits(token, func(event VisitEvent) {
		fmt.Printf("  visit: %s from %s\n", event.Device, event.Country)
	}); err != nil {
		fmt.Printf("Live feed failed: %v\n", err)
		os.Exit(1)
	}
}
