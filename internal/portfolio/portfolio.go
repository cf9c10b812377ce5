// Package portfolio holds the static site content. The site is a
// single server-rendered page, so the content lives in code rather
// than a database.
package portfolio

// Profile is the site owner's identity and contact details.
type Profile struct {
	Name     string
	Tagline  string
	Email    string
	Phone    string
	Location string
	GitHub   string
	LinkedIn string
}

// Project is a single portfolio entry.
type Project struct {
	Title       string
	Description string
	Image       string
	Tags        []string
	GitHub      string
	Live        string
	Type        string
}

// Certificate is a single earned credential.
type Certificate struct {
	Title  string
	Issuer string
	Date   string
	Image  string
}

// Achievement groups a headline certificate with the courses that
// earned it.
type Achievement struct {
	Title       string
	Description string
	Certificate Certificate
	Courses     []Certificate
}

// Badge is a verified skill badge.
type Badge struct {
	Name    string
	Company string
	Image   string
}

// Content is everything the home page renders.
type Content struct {
	Profile      Profile
	Projects     []Project
	Achievements []Achievement
	Badges       []Badge
}

// Default returns the site content.
func Default() Content {
	return Content{
		Profile: Profile{
			Name:     "Vikrant Kumar",
			Tagline:  "Full-Stack Developer & Cybersecurity Enthusiast",
			Email:    "vikrantkrd@gmail.com",
			Phone:    "+91 8306721779",
			Location: "IIITDM Jabalpur",
			GitHub:   "https://github.com/vikrantwiz02",
			LinkedIn: "https://www.linkedin.com/in/vikrant-kumar-b37a18282/",
		},
		Projects: []Project{
			{
				Title:       "Army Arms Management System",
				Description: "The Army Arms Management System (AAMS) streamlines the tracking, storage, and distribution of weapons, ammunition, and military equipment. It ensures accurate inventory, improves security, and optimizes logistics, supporting operational efficiency and readiness.",
				Image:       "/static/img/aams.png",
				Tags:        []string{"HTML", "CSS", "PHP", "MySQL", "JavaScript"},
				GitHub:      "https://github.com/vikrantwiz02/army-arms-management-system",
				Live:        "https://drive.google.com/file/d/1HzdHZwedvgV14mAlRdgwKQu7aWzJY4ex/view?usp=sharing",
				Type:        "web",
			},
			{
				Title:       "Saviour",
				Description: "Saviour is a technology-driven solution designed to save lives during natural disasters. It features real-time alerts, navigation assistance, resource availability tracking, user-to-user support, and offline communication. By integrating weather forecasting and innovative technologies, Saviour ensures timely information and aid to those in need, enhancing disaster preparedness and response.",
				Image:       "/static/img/saviour.png",
				Tags:        []string{"TypeScript", "JavaScript", "Tailwind CSS"},
				GitHub:      "https://github.com/vikrantwiz02/SAVIOUR",
				Live:        "https://drive.google.com/file/d/11MtDJCIcEl4Fgp5eM4wybGQ0oZBjyUvH/view?usp=sharing",
				Type:        "web",
			},
			{
				Title:       "Kavach",
				Description: "Kavach is a web application designed to address workplace sexual harassment by enabling users to lodge complaints, track their status in real-time, and send emergency SOS alerts with live location sharing. It aims to provide a safe, transparent, and supportive environment for individuals facing harassment in the workplace.",
				Image:       "/static/img/kavach.png",
				Tags:        []string{"TypeScript", "JavaScript", "Tailwind CSS"},
				GitHub:      "https://github.com/vikrantwiz02/KAVACH",
				Live:        "https://drive.google.com/file/d/1YVGRA76clSaDif01R5Vq9LlGIXgC5mLH/view?usp=sharing",
				Type:        "web",
			},
			{
				Title:       "Saviour2.0",
				Description: "Saviour 2.0 rebuilds the disaster response platform on a modern stack with real-time alerts, resource tracking, and offline communication, delivering timely information and aid to those in need.",
				Image:       "/static/img/saviour2.png",
				Tags:        []string{"TypeScript", "JavaScript", "Tailwind CSS", "React.js", "MongoDB"},
				GitHub:      "https://github.com/vikrantwiz02/Saviour2",
				Live:        "https://saviour-chi.vercel.app/",
				Type:        "web",
			},
			{
				Title:       "Portfolio",
				Description: "My portfolio serves as a comprehensive showcase of my work, highlighting projects across web development and cybersecurity. It reflects my ability to create innovative solutions, combining creativity and technical expertise to solve real-world problems.",
				Image:       "/static/img/portfolio.png",
				Tags:        []string{"Go", "HTML", "CSS", "JavaScript"},
				GitHub:      "https://github.com/vikrantwiz02/portfolio",
				Live:        "https://vikrant-portfolio-kappa.vercel.app/",
				Type:        "web",
			},
			{
				Title:       "Magic Form Builder",
				Description: "Magic Form Builder is a dynamic tool for creating forms effortlessly, similar to Google Forms. It enables users to design forms through an intuitive interface, with a real-time preview feature to visualize how the final form will appear.",
				Image:       "/static/img/magic-form-builder.png",
				Tags:        []string{"TypeScript", "JavaScript", "Tailwind CSS"},
				GitHub:      "https://github.com/vikrantwiz02/Magic-Form-Builder",
				Live:        "",
				Type:        "web",
			},
			{
				Title:       "IIITDMJ Unofficial Website",
				Description: "The IIITDMJ Unofficial Website is a fully responsive, full-stack project covering frontend, backend, and database storage. Designed to provide key insights into academics, campus life, and events, this independent platform ensures seamless accessibility and engagement for students and aspirants.",
				Image:       "/static/img/iiitdmj-website.png",
				Tags:        []string{"TypeScript", "JavaScript", "Tailwind CSS", "Next.js", "MongoDB", "Clerk"},
				GitHub:      "https://github.com/vikrantwiz02/iiitdmj-website",
				Live:        "https://iiitdmj-ten.vercel.app/",
				Type:        "web",
			},
			{
				Title:       "Koinx Assessment",
				Description: "Developed a responsive web app using React.js and TypeScript, integrating real-time cryptocurrency data from Coingecko APIs and interactive charts from TradingView. Delivered a production-grade project with dynamic components and a clean, scalable codebase.",
				Image:       "/static/img/koinx.png",
				Tags:        []string{"TypeScript", "JavaScript", "Tailwind CSS"},
				GitHub:      "https://github.com/vikrantwiz02/koinx",
				Live:        "https://koinx-iota-one.vercel.app/",
				Type:        "web",
			},
		},
		Achievements: []Achievement{
			{
				Title:       "Google Cybersecurity Professional Certificate",
				Description: "Completed comprehensive cybersecurity program covering various aspects of digital security.",
				Certificate: Certificate{
					Title:  "Google Cybersecurity Professional",
					Issuer: "Coursera",
					Date:   "Dec 2024",
					Image:  "/static/img/certs/google-cybersecurity.png",
				},
				Courses: []Certificate{
					{Title: "Foundations of Cybersecurity", Issuer: "Coursera", Date: "March 2024", Image: "/static/img/certs/foundations-of-cybersecurity.png"},
					{Title: "Play It Safe: Manage Security Risks", Issuer: "Coursera", Date: "March 2024", Image: "/static/img/certs/manage-security-risks.png"},
					{Title: "Connect and Protect: Networks and Network Security", Issuer: "Coursera", Date: "Dec 2024", Image: "/static/img/certs/networks-and-network-security.png"},
					{Title: "Tools of the Trade: Linux and SQL", Issuer: "Coursera", Date: "Dec 2024", Image: "/static/img/certs/linux-and-sql.png"},
					{Title: "Assets, Threats, and Vulnerabilities", Issuer: "Coursera", Date: "Dec 2024", Image: "/static/img/certs/assets-threats-vulnerabilities.png"},
					{Title: "Sound the Alarm: Detection and Response", Issuer: "Coursera", Date: "Dec 2024", Image: "/static/img/certs/detection-and-response.png"},
					{Title: "Automate Cybersecurity Tasks with Python", Issuer: "Coursera", Date: "Dec 2024", Image: "/static/img/certs/automate-with-python.png"},
					{Title: "Put It to Work: Prepare for Cybersecurity Jobs", Issuer: "Coursera", Date: "Dec 2024", Image: "/static/img/certs/prepare-for-cybersecurity-jobs.png"},
				},
			},
			{
				Title:       "Google IT Support Certificate",
				Description: "Completed comprehensive program that equips learners with foundational IT skills, including troubleshooting, networking, operating systems, system administration, and IT security, preparing them for entry-level IT support roles.",
				Certificate: Certificate{
					Title:  "Google IT Support",
					Issuer: "Coursera",
					Date:   "Dec 2024",
					Image:  "/static/img/certs/google-it-support.jpg",
				},
				Courses: []Certificate{
					{Title: "Technical Support Fundamentals", Issuer: "Coursera", Date: "Dec 2024", Image: "/static/img/certs/technical-support-fundamentals.jpg"},
					{Title: "The Bits and Bytes of Computer Networking", Issuer: "Coursera", Date: "Dec 2024", Image: "/static/img/certs/computer-networking.jpg"},
					{Title: "Operating Systems and You: Becoming a Power User", Issuer: "Coursera", Date: "Dec 2024", Image: "/static/img/certs/operating-systems.jpg"},
					{Title: "System Administration and IT Infrastructure Services", Issuer: "Coursera", Date: "Dec 2024", Image: "/static/img/certs/system-administration.jpg"},
					{Title: "IT Security: Defense against the digital dark arts", Issuer: "Coursera", Date: "Dec 2024", Image: "/static/img/certs/it-security.jpg"},
				},
			},
		},
		Badges: []Badge{
			{Name: "Google Cybersecurity Professional", Company: "Coursera", Image: "/static/img/badges/google-cybersecurity.png"},
			{Name: "Google IT Support Professional", Company: "Coursera", Image: "/static/img/badges/google-it-support.png"},
			{Name: "Frontend Developer", Company: "Devfolio", Image: "/static/img/badges/frontend-developer.png"},
			{Name: "Backend Developer", Company: "Devfolio", Image: "/static/img/badges/backend-developer.png"},
		},
	}
}
