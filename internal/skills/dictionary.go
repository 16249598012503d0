// Package skills holds the closed catalog of skill tokens recognised in résumés and job
// postings, partitioned into weight categories.
package skills

type Category string

const (
	Technical Category = "technical"
	Tools     Category = "tools"
	Soft      Category = "soft"
)

var weights = map[Category]float64{
	Technical: 2.0,
	Tools:     1.0,
	Soft:      0.5,
}

var technicalSkills = []string{
	// languages
	"JavaScript", "TypeScript", "Python", "Java", "C#", "C++", "Go", "Rust", "PHP", "Ruby",
	"Swift", "Kotlin", "Scala", "R", "SQL",

	// frontend
	"React", "Vue", "Angular", "Svelte", "Next.js", "Nuxt.js", "HTML", "CSS", "Sass", "LESS",
	"Tailwind CSS", "Bootstrap", "Material UI", "Chakra UI", "Redux", "MobX", "Zustand",

	// backend
	"Node.js", "Express", "Fastify", "NestJS", "Django", "Flask", "FastAPI", "Spring Boot",
	"ASP.NET", "Ruby on Rails", "Laravel",

	// databases
	"MySQL", "PostgreSQL", "MongoDB", "Redis", "Elasticsearch", "DynamoDB", "Cassandra",
	"Oracle", "SQL Server", "SQLite", "Firebase", "Supabase",

	// apis
	"REST API", "GraphQL", "gRPC", "WebSocket", "WebRTC", "OAuth", "JWT", "OpenAPI",

	// cloud
	"AWS", "Azure", "GCP", "Lambda", "API Gateway",

	// testing
	"Jest", "Vitest", "Mocha", "Chai", "Cypress", "Playwright", "Selenium", "Testing Library",
	"JUnit", "pytest",

	// mobile
	"React Native", "Flutter", "iOS", "Android",

	// data & ml
	"TensorFlow", "PyTorch", "Scikit-learn", "Pandas", "NumPy", "Jupyter", "Machine Learning",
	"Deep Learning", "NLP", "Computer Vision", "Data Analysis", "Data Science",

	// architecture
	"Microservices", "Serverless", "Progressive Web Apps", "WebAssembly",

	// networking & systems
	"TCP/IP", "Networking", "VPN", "Firewall", "DNS", "DHCP", "Linux", "Unix", "Windows Server",
	"Active Directory", "AD", "Azure AD",

	// security
	"Security", "Authentication", "Authorization", "BitLocker", "Antivirus",
}

var toolSkills = []string{
	// version control & ci/cd
	"Git", "GitHub", "GitLab", "Bitbucket", "Jenkins", "GitLab CI", "GitHub Actions", "CircleCI",
	"Travis CI", "CI/CD",

	// build
	"Webpack", "Vite", "Rollup",

	// containers & orchestration
	"Docker", "Kubernetes", "Terraform", "Ansible",

	// project management
	"Jira", "Confluence", "ServiceNow", "Zendesk", "Freshdesk",

	// methodologies
	"Agile", "Scrum", "Kanban", "TDD", "BDD", "ITIL",

	// dev tools
	"Xcode", "Android Studio", "Bash", "PowerShell",

	// operating systems
	"Windows", "Windows 10", "Windows 11",

	// communication
	"Microsoft Teams", "Slack", "Zoom", "Skype",

	// microsoft suite
	"Office 365", "Microsoft 365", "Microsoft Office", "Exchange", "Outlook", "OneDrive", "SharePoint",

	// it management
	"Group Policy", "Intune", "SCCM", "Patch Management", "Software Deployment",

	// remote support
	"Remote Desktop", "RDP", "TeamViewer", "AnyDesk", "VNC",

	// infrastructure
	"Load Balancing", "Caching", "Message Queue", "RabbitMQ", "Kafka",

	// virtualization
	"Virtual Machine", "VM", "VMware", "Hyper-V", "VirtualBox",

	// hardware & networking
	"Hardware", "Printer", "Scanner", "Network Printer", "Wi-Fi", "Wireless", "Ethernet", "Switch",
	"Router", "Modem", "IP Address", "MAC Address", "Subnet", "Gateway", "VLAN", "VoIP",

	// backup & recovery
	"Backup", "Restore", "Imaging", "Cloning",

	// storage
	"File Sharing", "Network Drive", "Mapped Drive",

	// certifications
	"CompTIA A+", "CompTIA Network+", "CompTIA Security+", "MCSA", "MCSE", "CCNA",

	// processes
	"Incident Management", "Problem Management", "Change Management", "Inventory Management",
	"Asset Management", "User Management", "Account Management", "Password Reset",
	"Permission Management", "Ticketing", "ITSM",

	// optimization
	"Performance Optimization", "Accessibility",
}

var softSkills = []string{
	"Customer Service", "Communication", "Documentation", "Knowledge Base", "Help Desk", "Helpdesk",
	"Service Desk", "Technical Support", "IT Support", "Tier 1", "Tier 2", "Tier 3",
	"Troubleshooting", "Diagnostics", "SLA", "Malware",
}

var (
	all        []string
	categories map[string]Category
)

func init() {
	all = make([]string, 0, len(technicalSkills)+len(toolSkills)+len(softSkills))
	categories = make(map[string]Category, cap(all))

	register := func(list []string, category Category) {
		for _, skill := range list {
			if _, exists := categories[skill]; exists {
				continue
			}
			categories[skill] = category
			all = append(all, skill)
		}
	}
	register(technicalSkills, Technical)
	register(toolSkills, Tools)
	register(softSkills, Soft)
}

// All returns every dictionary skill in discovery order: technical, then tools, then soft.
// The returned slice is a copy.
func All() []string {
	out := make([]string, len(all))
	copy(out, all)
	return out
}

// Contains reports whether skill is a dictionary member (exact, case-sensitive).
func Contains(skill string) bool {
	_, ok := categories[skill]
	return ok
}

// CategoryOf returns the weight category of skill. Anything not listed as technical or soft is a tool.
func CategoryOf(skill string) Category {
	if category, ok := categories[skill]; ok {
		return category
	}
	return Tools
}

func WeightOf(skill string) float64 {
	return weights[CategoryOf(skill)]
}

func WeightOfCategory(category Category) float64 {
	return weights[category]
}

// WeightedTotal sums the category weights of the given skills.
func WeightedTotal(list []string) float64 {
	total := 0.0
	for _, skill := range list {
		total += WeightOf(skill)
	}
	return total
}

func Categorize(list []string) map[Category][]string {
	categorized := map[Category][]string{
		Technical: {},
		Tools:     {},
		Soft:      {},
	}
	for _, skill := range list {
		category := CategoryOf(skill)
		categorized[category] = append(categorized[category], skill)
	}
	return categorized
}
