// Package taxonomy holds the static lookup tables used by the field
// extractors and the job normalizer: canonical skill names with their
// surface-form variants, soft-skill phrases, degree and institution keywords,
// location lists, and the technology-adjacency table behind recommendations.
//
// All tables are read-only after init and safe for concurrent readers.
package taxonomy

// TechnicalSkill maps a canonical skill name to the surface forms it may take
// in resume or job-posting text. Matching is case-insensitive substring
// containment against each variant.
type TechnicalSkill struct {
	Canonical string
	Variants  []string
}

// TechnicalSkills is checked in declaration order; a skill set built from it
// therefore lists skills in first-matched order, which callers rely on.
var TechnicalSkills = []TechnicalSkill{
	{"JavaScript", []string{"javascript", "js ", "es6"}},
	{"TypeScript", []string{"typescript", "ts "}},
	{"Python", []string{"python"}},
	{"Java", []string{"java ", "java,", "java."}},
	{"C++", []string{"c++", "cpp"}},
	{"C", []string{" c ", " c,", " c."}},
	{"Go", []string{"golang", " go ", " go,"}},
	{"Rust", []string{"rust"}},
	{"React", []string{"react"}},
	{"Angular", []string{"angular"}},
	{"Vue", []string{"vue"}},
	{"Node.js", []string{"node.js", "nodejs", "node js"}},
	{"Express", []string{"express.js", "expressjs", "express"}},
	{"Next.js", []string{"next.js", "nextjs"}},
	{"Django", []string{"django"}},
	{"Flask", []string{"flask"}},
	{"Spring Boot", []string{"spring boot", "springboot"}},
	{"HTML", []string{"html"}},
	{"CSS", []string{"css"}},
	{"Tailwind CSS", []string{"tailwind"}},
	{"SQL", []string{"sql"}},
	{"MySQL", []string{"mysql"}},
	{"PostgreSQL", []string{"postgresql", "postgres"}},
	{"MongoDB", []string{"mongodb", "mongo"}},
	{"Redis", []string{"redis"}},
	{"Firebase", []string{"firebase"}},
	{"AWS", []string{"aws", "amazon web services"}},
	{"Azure", []string{"azure"}},
	{"GCP", []string{"gcp", "google cloud"}},
	{"Docker", []string{"docker"}},
	{"Kubernetes", []string{"kubernetes", "k8s"}},
	{"Git", []string{"git"}},
	{"Linux", []string{"linux"}},
	{"Machine Learning", []string{"machine learning", "ml "}},
	{"Deep Learning", []string{"deep learning"}},
	{"TensorFlow", []string{"tensorflow"}},
	{"PyTorch", []string{"pytorch"}},
	{"Pandas", []string{"pandas"}},
	{"NumPy", []string{"numpy"}},
	{"Data Science", []string{"data science"}},
	{"REST API", []string{"rest api", "restful"}},
	{"GraphQL", []string{"graphql"}},
	{"Kotlin", []string{"kotlin"}},
	{"Swift", []string{"swift"}},
	{"Flutter", []string{"flutter"}},
	{"React Native", []string{"react native"}},
	{"PHP", []string{"php"}},
	{"Ruby", []string{"ruby"}},
	{"Scala", []string{"scala"}},
}

// SoftSkill pairs a canonical soft-skill label with its surface forms.
type SoftSkill struct {
	Canonical string
	Variants  []string
}

// SoftSkills is checked in declaration order, like TechnicalSkills.
var SoftSkills = []SoftSkill{
	{"Communication", []string{"communication"}},
	{"Leadership", []string{"leadership", "led a team", "team lead"}},
	{"Teamwork", []string{"teamwork", "team player", "collaboration"}},
	{"Problem Solving", []string{"problem solving", "problem-solving"}},
	{"Time Management", []string{"time management"}},
	{"Adaptability", []string{"adaptability", "adaptable"}},
	{"Critical Thinking", []string{"critical thinking"}},
	{"Creativity", []string{"creativity", "creative"}},
	{"Project Management", []string{"project management"}},
	{"Analytical", []string{"analytical"}},
	{"Presentation", []string{"presentation"}},
	{"Mentoring", []string{"mentoring", "mentored"}},
}

// DegreeKeywords are the degree tokens recognized by the education extractor.
var DegreeKeywords = []string{
	"b.tech", "btech", "b.e.", "bachelor of technology", "bachelor of engineering",
	"m.tech", "mtech", "m.e.", "master of technology", "master of engineering",
	"b.sc", "bsc", "bachelor of science",
	"m.sc", "msc", "master of science",
	"bca", "mca", "bba", "mba",
	"ph.d", "phd", "doctorate",
	"diploma",
}

// FieldsOfStudy are branch/major tokens paired with degree keywords.
var FieldsOfStudy = []string{
	"computer science", "information technology", "electronics",
	"electrical", "mechanical", "civil", "chemical",
	"data science", "artificial intelligence", "software engineering",
	"computer applications", "business administration",
}

// Cities is the location taxonomy used by both the personal-info extractor
// and the salary estimator's metro check.
var Cities = []string{
	"bangalore", "bengaluru", "hyderabad", "pune", "chennai", "mumbai",
	"delhi", "new delhi", "gurgaon", "gurugram", "noida", "kolkata",
	"ahmedabad", "jaipur", "chandigarh", "kochi", "coimbatore",
	"thiruvananthapuram", "indore", "nagpur", "lucknow", "bhubaneswar",
	"visakhapatnam", "remote",
}

// MetroCities get the location salary multiplier.
var MetroCities = []string{
	"bangalore", "bengaluru", "mumbai", "delhi", "gurgaon", "gurugram",
	"hyderabad", "pune", "noida",
}

// JobTypeIndicator maps a job-type label to title/description keywords.
type JobTypeIndicator struct {
	Label    string
	Keywords []string
}

// JobTypeIndicators is a priority-ordered ladder; first match wins.
var JobTypeIndicators = []JobTypeIndicator{
	{"Internship", []string{"intern", "internship", "trainee"}},
	{"Contract", []string{"contract", "contractor", "freelance"}},
	{"Part-time", []string{"part-time", "part time"}},
	{"Full-time", []string{"full-time", "full time", "permanent"}},
}

// SkillAdjacency maps a detected skill to the complementary technology the
// insight generator recommends learning next.
var SkillAdjacency = map[string]string{
	"React":            "Learn Node.js and Express to become a full-stack developer",
	"Python":           "Explore pandas, NumPy and scikit-learn to add data skills",
	"Java":             "Learn Spring Boot to build production backend services",
	"JavaScript":       "Pick up TypeScript for safer large-scale codebases",
	"Machine Learning": "Deploy models with Docker and a cloud platform (AWS/GCP)",
	"AWS":              "Add Terraform or Kubernetes to strengthen your DevOps profile",
	"Node.js":          "Learn PostgreSQL or MongoDB for complete backend ownership",
	"HTML":             "Learn React or Vue to move beyond static pages",
}

// SectionHeadings are the section markers recognized by the section scanner.
// Lower-cased; compared against trimmed lower-cased lines.
var SectionHeadings = []string{
	"education", "experience", "work experience", "professional experience",
	"projects", "personal projects", "academic projects",
	"skills", "technical skills",
	"certifications", "certificates", "courses",
	"achievements", "awards", "publications",
	"summary", "objective", "profile", "interests", "languages",
}
