package interview

import (
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Pool holds the question texts available for one job role.
type Pool struct {
	Technical  []string `mapstructure:"technical"`
	Behavioral []string `mapstructure:"behavioral"`
}

// Bank is the role-keyed question bank. It is read-only once built;
// selectors copy pools before shuffling them.
type Bank struct {
	Roles   map[string]Pool `mapstructure:"roles"`
	Default Pool            `mapstructure:"default"`
}

// RolePool returns the pool for the given role, falling back to the
// default pool when the role is unknown. It never fails.
func (b *Bank) RolePool(role string) Pool {
	if pool, ok := b.Roles[role]; ok {
		return pool
	}
	return b.Default
}

// Validate checks that every pool, including the default one, can satisfy
// the requested technical and behavioral question counts.
func (b *Bank) Validate(technical, behavioral int) error {
	if len(b.Default.Technical) < technical || len(b.Default.Behavioral) < behavioral {
		return fmt.Errorf("default pool must have at least %d technical and %d behavioral questions", technical, behavioral)
	}
	for role, pool := range b.Roles {
		if len(pool.Technical) < technical {
			return fmt.Errorf("role %q needs at least %d technical questions, has %d", role, technical, len(pool.Technical))
		}
		if len(pool.Behavioral) < behavioral {
			return fmt.Errorf("role %q needs at least %d behavioral questions, has %d", role, behavioral, len(pool.Behavioral))
		}
	}
	return nil
}

// LoadBank reads a question bank override from a YAML file. The file has
// a "roles" map and an optional "default" pool; an omitted default keeps
// the built-in fallback pool.
func LoadBank(path string) (*Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading question bank %q: %w", path, err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing question bank %q: %w", path, err)
	}

	var bank Bank
	if err := mapstructure.Decode(raw, &bank); err != nil {
		return nil, fmt.Errorf("decoding question bank %q: %w", path, err)
	}

	if len(bank.Default.Technical) == 0 && len(bank.Default.Behavioral) == 0 {
		bank.Default = DefaultBank().Default
	}

	return &bank, nil
}

// DefaultBank returns the built-in question bank.
func DefaultBank() *Bank {
	return &Bank{
		Roles: map[string]Pool{
			"Frontend Developer": {
				Technical: []string{
					"Explain the virtual DOM in React and how it improves performance.",
					"What's the difference between let, const, and var in JavaScript?",
					"How do you handle state management in a large React application?",
					"Describe CSS specificity and how it affects styling.",
					"What are React hooks and why were they introduced?",
					"How do you optimize the performance of a React application?",
					"Explain the concept of closures in JavaScript with an example.",
					"What is the difference between controlled and uncontrolled components?",
				},
				Behavioral: []string{
					"Describe a challenging bug you fixed and how you approached it.",
					"Tell me about a time you had to work with a difficult team member.",
					"How do you stay updated with the latest frontend technologies?",
					"Describe a project where you had to learn a new technology quickly.",
					"Tell me about a time you disagreed with a design decision.",
				},
			},
			"Backend Developer": {
				Technical: []string{
					"Explain the difference between SQL and NoSQL databases.",
					"How do you handle authentication and authorization in APIs?",
					"What are microservices and what are their advantages?",
					"Describe how you would design a RESTful API.",
					"How do you ensure data consistency in distributed systems?",
					"What is database indexing and why is it important?",
					"Explain the concept of caching and different caching strategies.",
					"How do you handle error handling in backend applications?",
				},
				Behavioral: []string{
					"Describe a time when you had to optimize a slow database query.",
					"Tell me about a system design challenge you faced.",
					"How do you approach debugging complex backend issues?",
					"Describe a time you had to make a trade-off between performance and maintainability.",
					"Tell me about a time you had to handle a production incident.",
				},
			},
			"Full Stack Developer": {
				Technical: []string{
					"How do you ensure data consistency between frontend and backend?",
					"Explain the differences between server-side and client-side rendering.",
					"How do you handle authentication across the full stack?",
					"Describe your approach to API design and documentation.",
					"How do you manage state in a full-stack application?",
					"What strategies do you use for testing full-stack applications?",
					"How do you handle real-time data synchronization?",
					"Explain the concept of progressive web applications.",
				},
				Behavioral: []string{
					"Describe a full-stack project you built from scratch.",
					"How do you prioritize between frontend and backend tasks?",
					"Tell me about a time you had to make architectural decisions.",
					"Describe how you collaborate with designers and other developers.",
					"Tell me about a challenging integration you implemented.",
				},
			},
			"QA Engineer": {
				Technical: []string{
					"What's the difference between unit, integration, and end-to-end testing?",
					"How do you design test cases for a new feature?",
					"Explain the concept of test automation and its benefits.",
					"How do you handle flaky tests in automated test suites?",
					"What tools do you use for performance testing?",
					"Describe your approach to API testing.",
					"How do you ensure test coverage without over-testing?",
					"What is the testing pyramid and how do you apply it?",
				},
				Behavioral: []string{
					"Describe a critical bug you found and how you reported it.",
					"Tell me about a time you had to advocate for quality improvements.",
					"How do you handle pressure to skip testing due to tight deadlines?",
					"Describe your experience working with development teams.",
					"Tell me about a time you improved a testing process.",
				},
			},
			"DevOps Engineer": {
				Technical: []string{
					"Explain the concept of Infrastructure as Code.",
					"How do you handle secrets management in CI/CD pipelines?",
					"What's the difference between containers and virtual machines?",
					"Describe your approach to monitoring and alerting.",
					"How do you implement blue-green deployments?",
					"What strategies do you use for backup and disaster recovery?",
					"Explain the concept of immutable infrastructure.",
					"How do you handle scaling applications automatically?",
				},
				Behavioral: []string{
					"Describe a time you resolved a critical production incident.",
					"Tell me about a complex deployment you managed.",
					"How do you balance automation with manual processes?",
					"Describe your experience with cloud migration projects.",
					"Tell me about a time you improved system reliability.",
				},
			},
		},
		Default: Pool{
			Technical: []string{
				"Describe your experience with the technologies mentioned in your resume.",
				"How do you approach learning new technologies or frameworks?",
				"Walk me through your problem-solving process for technical challenges.",
				"What development tools and practices do you find most valuable?",
			},
			Behavioral: []string{
				"Tell me about a challenging project you worked on recently.",
				"Describe a time you had to work under pressure or tight deadlines.",
				"How do you handle constructive criticism or feedback?",
				"Tell me about a time you had to collaborate with a difficult colleague.",
			},
		},
	}
}
