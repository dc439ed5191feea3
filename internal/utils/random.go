package utils

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/summit-surfaces/install-manager/backend/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

var firstNames = []string{
	"James", "Mary", "Robert", "Patricia", "John", "Jennifer", "Michael",
	"Linda", "David", "Elizabeth", "William", "Barbara", "Richard", "Susan",
	"Joseph", "Jessica", "Thomas", "Sarah", "Carlos", "Maria",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller",
	"Davis", "Rodriguez", "Martinez", "Hernandez", "Lopez", "Wilson",
	"Anderson", "Thomas", "Taylor", "Moore", "Jackson", "Martin", "Lee",
}

func GenerateRandomFullName() string {
	return firstNames[rand.Intn(len(firstNames))] + " " + lastNames[rand.Intn(len(lastNames))]
}

var digits = "0123456789"

func GenerateUsernameFromFullName(fullName string) string {
	parts := strings.Fields(strings.ToLower(fullName))
	username := ""
	for _, part := range parts {
		length := rand.Intn(len(part)) + 1
		username += part[:length]
	}

	digitsLength := rand.Intn(3) + 1
	for i := 0; i < digitsLength; i++ {
		username += string(digits[rand.Intn(len(digits))])
	}

	return username
}

var roles = []domain.Role{
	domain.RoleAdmin,
	domain.RoleCoordinator,
	domain.RoleInstaller,
}

func GenerateRandomRole() domain.Role {
	return roles[rand.Intn(len(roles))]
}

func GenerateRandomUser(password string, emailDomain string) (*domain.User, error) {
	fullName := GenerateRandomFullName()
	username := GenerateUsernameFromFullName(fullName)
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     username,
		PasswordHash: string(passwordHash),
		FullName:     fullName,
		Email:        username + "@" + emailDomain,
		Role:         GenerateRandomRole(),
	}

	return user, nil
}

func GenerateRandomOTP() string {
	return fmt.Sprintf("%06d", rand.Intn(1000000))
}

var letters = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*")

func GenerateRandomPassword(length int) string {
	password := make([]rune, length)
	for i := range password {
		password[i] = letters[rand.Intn(len(letters))]
	}
	return string(password)
}

// GenerateOrderNumber returns a short human-quotable order reference derived
// from a v4 UUID.
func GenerateOrderNumber() string {
	id := uuid.New()
	return "SO-" + strings.ToUpper(id.String()[:8])
}

// GenerateTrackingCode returns a shipment tracking code customers can look up
// without authentication.
func GenerateTrackingCode() string {
	id := uuid.New()
	return "TRK-" + strings.ToUpper(strings.ReplaceAll(id.String(), "-", "")[:12])
}

var specialties = []domain.Specialty{
	domain.SpecialtyCabinets,
	domain.SpecialtyCountertops,
	domain.SpecialtyFlooring,
	domain.SpecialtyGeneral,
}

var crewWords = []string{
	"Summit", "Granite", "Oak", "Maple", "Slate", "Cedar", "Ridge", "Mesa",
}

func GenerateRandomTeam() *domain.Team {
	return &domain.Team{
		Name:      crewWords[rand.Intn(len(crewWords))] + " Crew " + fmt.Sprintf("%02d", rand.Intn(100)),
		Specialty: specialties[rand.Intn(len(specialties))],
	}
}

var streets = []string{
	"Aspen Way", "Birch Street", "Canyon Road", "Dogwood Lane", "Elm Avenue",
}

func GenerateRandomProject() *domain.Project {
	customer := GenerateRandomFullName()
	return &domain.Project{
		Name:         customer + " Remodel",
		CustomerName: customer,
		Address:      fmt.Sprintf("%d %s", rand.Intn(9000)+100, streets[rand.Intn(len(streets))]),
		Status:       domain.ProjectPlanning,
	}
}

// GenerateRandomAssignment schedules the given team on the given project for
// a short range starting a random number of days from now.
func GenerateRandomAssignment(projectID, teamID int64) *domain.Assignment {
	now := time.Now()
	start := domain.NewDate(now.Year(), now.Month(), now.Day()).AddDays(rand.Intn(60))
	return &domain.Assignment{
		ProjectID:      projectID,
		TeamID:         teamID,
		ScheduledStart: start,
		ScheduledEnd:   start.AddDays(rand.Intn(7)),
		Status:         domain.AssignmentScheduled,
	}
}

var productNames = map[domain.ProductCategory][]string{
	domain.CategoryCabinet:    {"Shaker Base Cabinet", "Glazed Wall Cabinet", "Pantry Tower"},
	domain.CategoryCountertop: {"Quartz Slab", "Granite Slab", "Butcher Block"},
	domain.CategoryFlooring:   {"Oak Plank", "Luxury Vinyl Tile", "Porcelain Tile"},
	domain.CategoryHardware:   {"Brushed Pull", "Soft-Close Hinge", "Cabinet Knob"},
}

var productUnits = map[domain.ProductCategory]string{
	domain.CategoryCabinet:    "each",
	domain.CategoryCountertop: "sq_ft",
	domain.CategoryFlooring:   "sq_ft",
	domain.CategoryHardware:   "each",
}

func GenerateRandomProduct() *domain.Product {
	categories := []domain.ProductCategory{
		domain.CategoryCabinet, domain.CategoryCountertop,
		domain.CategoryFlooring, domain.CategoryHardware,
	}
	category := categories[rand.Intn(len(categories))]
	names := productNames[category]
	return &domain.Product{
		Name:       names[rand.Intn(len(names))],
		Category:   category,
		Unit:       productUnits[category],
		PriceCents: int64(rand.Intn(50000) + 500),
	}
}
