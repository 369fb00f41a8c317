package analyzer

import (
	"context"
	"fmt"
	"strings"

	"recruitflow/internal/ai"
	"recruitflow/internal/errors"
)

// PostingGenerator drafts job-posting text per opening. AI-generated when a
// generator is configured, falling back to a fixed LinkedIn-style template.
type PostingGenerator struct {
	service *ai.Service
	logger  *errors.Logger
}

// NewPostingGenerator creates a posting generator. The service may be nil.
func NewPostingGenerator(service *ai.Service, logger *errors.Logger) *PostingGenerator {
	return &PostingGenerator{service: service, logger: logger}
}

// Generate returns posting text for one opening. Never fails: any AI error
// downgrades to the template.
func (p *PostingGenerator) Generate(ctx context.Context, position, department string, salaryUSD float64, salaryRange, experienceLevel string) string {
	if !p.service.Available() {
		return FallbackPosting(position, department, salaryRange, experienceLevel)
	}

	prompt := BuildPostingPrompt(position, department, salaryUSD, salaryRange, experienceLevel)
	text, _, err := p.service.Generate(ctx, prompt)
	if err != nil {
		if p.logger != nil {
			p.logger.Warn("AI posting generation failed, using template",
				"position", position,
				"department", department,
				"error", err.Error())
		}
		return FallbackPosting(position, department, salaryRange, experienceLevel)
	}
	return text
}

// BuildPostingPrompt assembles the posting-generation prompt.
func BuildPostingPrompt(position, department string, salaryUSD float64, salaryRange, experienceLevel string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Create a compelling LinkedIn-style job posting for a %s position in the %s department.\n\n", position, department)
	b.WriteString("Details:\n")
	fmt.Fprintf(&b, "- Salary Range: %s\n", salaryRange)
	fmt.Fprintf(&b, "- Experience Level: %s\n", experienceLevel)
	fmt.Fprintf(&b, "- Previous employee salary: $%s\n\n", formatUSD(salaryUSD))
	b.WriteString(`Make it engaging and LinkedIn-worthy with:
1. **Eye-catching headline** with emojis and compelling language
2. **Company culture and mission** (brief mention)
3. **What makes this role exciting** (2-3 compelling points)
4. **Key responsibilities** (5-7 bullet points with action verbs)
5. **What we're looking for** (required qualifications)
6. **Bonus points** (preferred qualifications)
7. **What's in it for you** (benefits, growth, impact)
8. **Call to action** (encouraging application)

Style guidelines:
- Use emojis strategically (but not overdone)
- Write in an engaging, conversational tone
- Highlight impact and growth opportunities
- Make it feel like an exciting opportunity, not just a job
- Include phrases like "Join our team", "Make an impact", "Grow with us"
- Keep it professional but approachable
- Use bullet points for easy scanning
- Make it shareable and engaging for LinkedIn`)

	return b.String()
}

// FallbackPosting is the deterministic LinkedIn-style posting template.
func FallbackPosting(position, department, salaryRange, experienceLevel string) string {
	deptTag := strings.ReplaceAll(strings.ToLower(department), " ", "")
	positionTag := strings.ReplaceAll(strings.ToLower(position), " ", "")

	return fmt.Sprintf(`🚀 **%[1]s** - Join Our Growing %[2]s Team!

**💰 Salary Range:** %[3]s
**⏰ Experience:** %[4]s

---

## 🎯 **What Makes This Role Exciting?**

We're looking for a passionate **%[1]s** who's ready to make a real impact in our %[2]s department. This isn't just another job – you'll be part of a dynamic team building innovative solutions!

### 🌟 **Why You'll Love Working With Us:**
• **Innovation-Driven Culture:** Work on cutting-edge technologies
• **Growth Opportunities:** Clear path for career advancement
• **Impact:** Your work will directly improve our products and services
• **Collaboration:** Join a team of talented professionals

---

## 🔧 **What You'll Be Doing:**

• **Lead key initiatives** and contribute to strategic projects
• **Collaborate with cross-functional teams** to deliver high-quality solutions
• **Develop and implement** best practices and processes
• **Mentor junior team members** and share knowledge
• **Stay updated** with industry trends and emerging technologies
• **Contribute to** continuous improvement efforts

---

## 🎯 **What We're Looking For:**

### **Required Skills:**
• %[4]s of relevant experience
• Strong technical and analytical skills
• Excellent communication and collaboration abilities
• Problem-solving mindset and attention to detail
• Ability to work in a fast-paced environment

### **Bonus Points:**
• Experience with modern tools and technologies
• Leadership or mentoring experience
• Industry certifications or advanced education
• Track record of successful project delivery

---

## 🎁 **What's In It For You:**

• **Competitive compensation** with performance bonuses
• **Health and wellness** benefits
• **Professional development** opportunities
• **Flexible work arrangements**
• **Collaborative team** environment
• **Work-life balance** focus

---

## 🚀 **Ready to Make an Impact?**

If you're excited about joining a dynamic team where your contributions matter, we'd love to hear from you!

**Apply now** and let's build something amazing together! 🚀

---

**#hiring #%[5]s #%[6]s #careers #jobopportunity**`,
		position, department, salaryRange, experienceLevel, deptTag, positionTag)
}

// formatUSD renders a dollar amount with thousands separators and cents.
func formatUSD(amount float64) string {
	s := fmt.Sprintf("%.2f", amount)
	dot := strings.Index(s, ".")
	intPart, fracPart := s[:dot], s[dot:]

	negative := strings.HasPrefix(intPart, "-")
	intPart = strings.TrimPrefix(intPart, "-")

	var b strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}

	out := b.String() + fracPart
	if negative {
		out = "-" + out
	}
	return out
}
