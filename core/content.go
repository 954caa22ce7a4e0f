package core

import (
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"
)

const ContentFile = "content.yml"

type Link struct {
	Label string `yaml:"label"`
	Path  string `yaml:"path"`
}

type Button struct {
	Label     string `yaml:"label"`
	Path      string `yaml:"path"`
	Secondary bool   `yaml:"secondary"`
	Small     bool   `yaml:"small"`
}

type SocialLink struct {
	Label string `yaml:"label"`
	Icon  string `yaml:"icon"`
	Href  string `yaml:"href"`
}

type LinkList struct {
	Heading string `yaml:"heading"`
	Links   []Link `yaml:"links"`
}

type Card struct {
	Title  string  `yaml:"title"`
	Text   string  `yaml:"text"`
	Button *Button `yaml:"button"`
}

type FeedbackForm struct {
	Name    string `yaml:"name"`
	Email   string `yaml:"email"`
	Message string `yaml:"message"`
	Submit  string `yaml:"submit"`
}

type HomeContent struct {
	Title string `yaml:"title"`
	Hero  struct {
		Heading string   `yaml:"heading"`
		Lead    string   `yaml:"lead"`
		Buttons []Button `yaml:"buttons"`
	} `yaml:"hero"`
	FeaturesHeading string   `yaml:"featuresHeading"`
	Features        []Card   `yaml:"features"`
	QuickLinks      LinkList `yaml:"quickLinks"`
}

type NewsItem struct {
	Title   string   `yaml:"title"`
	Date    string   `yaml:"date"`
	Text    string   `yaml:"text"`
	Buttons []Button `yaml:"buttons"`
}

type NewsContent struct {
	Title      string     `yaml:"title"`
	Heading    string     `yaml:"heading"`
	Items      []NewsItem `yaml:"items"`
	QuickLinks LinkList   `yaml:"quickLinks"`
}

type Member struct {
	Name   string  `yaml:"name"`
	Role   string  `yaml:"role"`
	Bio    string  `yaml:"bio"`
	Photo  string  `yaml:"photo"`
	Button *Button `yaml:"button"`
}

type ManagementContent struct {
	Title      string   `yaml:"title"`
	Heading    string   `yaml:"heading"`
	Lead       string   `yaml:"lead"`
	Members    []Member `yaml:"members"`
	QuickLinks LinkList `yaml:"quickLinks"`
}

type AboutContent struct {
	Title          string   `yaml:"title"`
	Heading        string   `yaml:"heading"`
	HistoryHeading string   `yaml:"historyHeading"`
	History        []string `yaml:"history"`
	HistoryButton  Button   `yaml:"historyButton"`
	ValuesHeading  string   `yaml:"valuesHeading"`
	Values         []Card   `yaml:"values"`
	QuickLinks     LinkList `yaml:"quickLinks"`
}

type ContactLine struct {
	Icon  string `yaml:"icon"`
	Label string `yaml:"label"`
	Value string `yaml:"value"`
}

type Department struct {
	Name  string `yaml:"name"`
	Email string `yaml:"email"`
	Phone string `yaml:"phone"`
}

type ContactsContent struct {
	Title              string        `yaml:"title"`
	Heading            string        `yaml:"heading"`
	OfficeHeading      string        `yaml:"officeHeading"`
	Office             []ContactLine `yaml:"office"`
	DepartmentsHeading string        `yaml:"departmentsHeading"`
	Departments        []Department  `yaml:"departments"`
	BranchesHeading    string        `yaml:"branchesHeading"`
	FormHeading        string        `yaml:"formHeading"`
}

type BranchesContent struct {
	Title      string   `yaml:"title"`
	Heading    string   `yaml:"heading"`
	Lead       string   `yaml:"lead"`
	MoreLabel  string   `yaml:"moreLabel"`
	QuickLinks LinkList `yaml:"quickLinks"`
	Detail     struct {
		ContactHeading  string `yaml:"contactHeading"`
		AboutHeading    string `yaml:"aboutHeading"`
		ServicesHeading string `yaml:"servicesHeading"`
		ContactButton   Button `yaml:"contactButton"`
		AllButton       Button `yaml:"allButton"`
		OtherHeading    string `yaml:"otherHeading"`
		FormHeading     string `yaml:"formHeading"`
	} `yaml:"detail"`
	NotFound struct {
		Title  string `yaml:"title"`
		Text   string `yaml:"text"`
		Button Button `yaml:"button"`
	} `yaml:"notFound"`
}

type NotFoundContent struct {
	Title      string   `yaml:"title"`
	Heading    string   `yaml:"heading"`
	Text       string   `yaml:"text"`
	Button     Button   `yaml:"button"`
	QuickLinks LinkList `yaml:"quickLinks"`
}

// Content is every server-authored text record of the site.
type Content struct {
	SiteName     string            `yaml:"siteName"`
	Copyright    string            `yaml:"copyright"`
	Nav          []Link            `yaml:"nav"`
	Social       []SocialLink      `yaml:"social"`
	FeedbackForm FeedbackForm      `yaml:"feedbackForm"`
	Home         HomeContent       `yaml:"home"`
	News         NewsContent       `yaml:"news"`
	Management   ManagementContent `yaml:"management"`
	About        AboutContent      `yaml:"about"`
	Contacts     ContactsContent   `yaml:"contacts"`
	Branches     BranchesContent   `yaml:"branches"`
	NotFound     NotFoundContent   `yaml:"notFound"`
}

// LoadContent parses content.yml from the root of fsys.
func LoadContent(fsys fs.FS) (*Content, error) {
	data, err := fs.ReadFile(fsys, ContentFile)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", ContentFile, err)
	}

	var c Content
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse %s: %w", ContentFile, err)
	}

	if c.SiteName == "" {
		return nil, fmt.Errorf("parse %s: siteName is required", ContentFile)
	}
	if len(c.Nav) == 0 {
		return nil, fmt.Errorf("parse %s: nav must list at least one link", ContentFile)
	}

	return &c, nil
}
