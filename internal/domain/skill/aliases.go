package skill

// aliases maps lowercase tokens to one canonical display name. Every canonical
// name's own lowercase form maps to itself, which keeps Normalize idempotent.
var aliases = map[string]string{
	"go":         "Go",
	"golang":     "Go",
	"js":         "JavaScript",
	"javascript": "JavaScript",
	"ecmascript": "JavaScript",
	"ts":         "TypeScript",
	"typescript": "TypeScript",
	"py":         "Python",
	"python":     "Python",
	"python3":    "Python",
	"java":       "Java",
	"c#":         "C#",
	"csharp":     "C#",
	"rb":         "Ruby",
	"ruby":       "Ruby",
	"php":        "PHP",
	"rust":       "Rust",
	"kotlin":     "Kotlin",
	"swift":      "Swift",

	"react":         "React",
	"react.js":      "React",
	"reactjs":       "React",
	"vue":           "Vue.js",
	"vue.js":        "Vue.js",
	"vuejs":         "Vue.js",
	"angular":       "Angular",
	"angularjs":     "Angular",
	"next":          "Next.js",
	"next.js":       "Next.js",
	"nextjs":        "Next.js",
	"node":          "Node.js",
	"node.js":       "Node.js",
	"nodejs":        "Node.js",
	"express":       "Express",
	"expressjs":     "Express",
	"django":        "Django",
	"flask":         "Flask",
	"fastapi":       "FastAPI",
	"rails":         "Ruby on Rails",
	"ruby on rails": "Ruby on Rails",
	"spring":        "Spring",
	"spring boot":   "Spring",
	"springboot":    "Spring",
	".net":          ".NET",
	"dotnet":        ".NET",

	"postgres":      "PostgreSQL",
	"postgresql":    "PostgreSQL",
	"psql":          "PostgreSQL",
	"mysql":         "MySQL",
	"mongo":         "MongoDB",
	"mongodb":       "MongoDB",
	"redis":         "Redis",
	"elasticsearch": "Elasticsearch",
	"sql":           "SQL",

	"docker":     "Docker",
	"k8s":        "Kubernetes",
	"kubernetes": "Kubernetes",
	"terraform":  "Terraform",
	"ansible":    "Ansible",
	"jenkins":    "Jenkins",
	"ci/cd":      "CI/CD",
	"cicd":       "CI/CD",
	"git":        "Git",
	"github":     "Git",
	"linux":      "Linux",

	"aws":                 "AWS",
	"amazon web services": "AWS",
	"gcp":                 "GCP",
	"google cloud":        "GCP",
	"azure":               "Azure",
	"lambda":              "AWS Lambda",
	"aws lambda":          "AWS Lambda",
	"ec2":                 "EC2",
	"s3":                  "S3",

	"ml":               "Machine Learning",
	"machine learning": "Machine Learning",
	"dl":               "Deep Learning",
	"deep learning":    "Deep Learning",
	"tensorflow":       "TensorFlow",
	"pytorch":          "PyTorch",
	"pandas":           "Pandas",
	"numpy":            "NumPy",

	"graphql":      "GraphQL",
	"rest":         "REST",
	"rest api":     "REST",
	"grpc":         "gRPC",
	"kafka":        "Kafka",
	"rabbitmq":     "RabbitMQ",
	"html":         "HTML",
	"html5":        "HTML",
	"css":          "CSS",
	"css3":         "CSS",
	"sass":         "Sass",
	"tailwind":     "Tailwind CSS",
	"tailwind css": "Tailwind CSS",
	"tailwindcss":  "Tailwind CSS",
}

// related lists, per canonical parent skill, the child skills a parent grants
// partial credit toward. Directed; deliberately not symmetric.
var related = map[string][]string{
	"JavaScript":       {"React", "Vue.js", "Angular", "Node.js", "Express", "Next.js"},
	"TypeScript":       {"React", "Angular", "Node.js", "Next.js"},
	"Python":           {"Django", "Flask", "FastAPI", "Pandas", "NumPy"},
	"Java":             {"Spring"},
	"Ruby":             {"Ruby on Rails"},
	"C#":               {".NET"},
	"React":            {"Next.js"},
	"Node.js":          {"Express"},
	"AWS":              {"AWS Lambda", "EC2", "S3"},
	"SQL":              {"PostgreSQL", "MySQL"},
	"Machine Learning": {"TensorFlow", "PyTorch", "Deep Learning"},
	"CSS":              {"Sass", "Tailwind CSS"},
	"Docker":           {"Kubernetes"},
}
