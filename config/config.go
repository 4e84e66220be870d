package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port      string
	JWTKey    string
	SaltRound int

	FrontendBaseURL string

	InstitutionName string
	DepartmentName  string
	CourseName      string
	InstructorName  string
	InstructorTitle string
	ContactEmail    string

	SendGridKey string
	EmailSender string

	// Password assigned to student accounts auto-created during issuance.
	DefaultStudentPassword string

	CertDir string
	LORDir  string
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Port:      getEnv("PORT", "5000"),
		JWTKey:    getEnv("JWT_SECRET_KEY", "defaultSecret"),
		SaltRound: getEnvInt("SALT_ROUND", 10),

		FrontendBaseURL: getEnv("FRONTEND_BASE_URL", "http://localhost:3000"),

		InstitutionName: getEnv("INSTITUTION_NAME", "CEG, Anna University"),
		DepartmentName:  getEnv("DEPARTMENT_NAME", "Computer Science and Engineering"),
		CourseName:      getEnv("COURSE_NAME", "FULL STACK TECHNOLOGIES"),
		InstructorName:  getEnv("INSTRUCTOR_NAME", "Dr. P. Mohamed Fathimal"),
		InstructorTitle: getEnv("INSTRUCTOR_TITLE", "Assistant Professor"),
		ContactEmail:    getEnv("CONTACT_EMAIL", "admin@certifyme.example.com"),

		SendGridKey: getEnv("SENDGRID_API_KEY", ""),
		EmailSender: getEnv("EMAIL_SENDER", "no-reply@certifyme.example.com"),

		DefaultStudentPassword: getEnv("DEFAULT_STUDENT_PASSWORD", "certifyme123"),

		CertDir: getEnv("CERT_DIR", "./certs"),
		LORDir:  getEnv("LOR_DIR", "./lors"),
	}

	// Validate critical configuration
	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
	if AppConfig.SendGridKey == "" {
		log.Println("Warning: SENDGRID_API_KEY not set. Outgoing email will fail.")
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}
