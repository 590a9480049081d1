package database

import (
	courseModels "coursecart/models/course"
	"log"

	"gorm.io/gorm"
)

// SeedCatalog inserts a small starter catalog when the courses table is empty,
// so a fresh local database has something to browse and buy.
func SeedCatalog(db *gorm.DB) {
	var count int64
	db.Model(&courseModels.Course{}).Count(&count)
	if count > 0 {
		return
	}

	log.Println("Seeding starter catalog...")

	courses := []struct {
		course  courseModels.Course
		modules []struct {
			title   string
			lessons []string
		}
	}{
		{
			course: courseModels.Course{
				Title:       "Web Development Fundamentals",
				Description: "HTML, CSS and JavaScript from the ground up.",
				Author:      "Sarah Chen",
				Price:       49.99,
				ImagePath:   "/images/web-dev.jpg",
				IsPublished: true,
			},
			modules: []struct {
				title   string
				lessons []string
			}{
				{"Getting Started", []string{"How the Web Works", "Setting Up Your Editor"}},
				{"HTML & CSS", []string{"Semantic HTML", "CSS Layout", "Responsive Design"}},
				{"JavaScript Basics", []string{"Variables and Types", "Functions", "The DOM"}},
			},
		},
		{
			course: courseModels.Course{
				Title:       "Data Analysis with SQL",
				Description: "Query, aggregate and report on relational data.",
				Author:      "Miguel Torres",
				Price:       39.99,
				ImagePath:   "/images/sql.jpg",
				IsPublished: true,
			},
			modules: []struct {
				title   string
				lessons []string
			}{
				{"SQL Essentials", []string{"SELECT and WHERE", "Joins"}},
				{"Aggregation", []string{"GROUP BY", "Window Functions"}},
			},
		},
	}

	for _, entry := range courses {
		c := entry.course
		if err := db.Create(&c).Error; err != nil {
			log.Printf("Error seeding course %q: %v", c.Title, err)
			continue
		}
		for mi, m := range entry.modules {
			mod := courseModels.CourseModule{
				CourseID: c.ID,
				Title:    m.title,
				Position: mi + 1,
			}
			if err := db.Create(&mod).Error; err != nil {
				log.Printf("Error seeding module %q: %v", m.title, err)
				continue
			}
			for li, title := range m.lessons {
				lesson := courseModels.CourseLesson{
					ModuleID: mod.ID,
					Title:    title,
					Content:  "Lesson content for " + title,
					Position: li + 1,
				}
				if err := db.Create(&lesson).Error; err != nil {
					log.Printf("Error seeding lesson %q: %v", title, err)
				}
			}
		}
	}

	log.Println("Starter catalog seeded.")
}
