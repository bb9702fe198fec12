package command

import (
	"fmt"
	"os"

	"github.com/alexschwind/ratemycourses/database"
	"github.com/alexschwind/ratemycourses/internal/repository"
	"github.com/alexschwind/ratemycourses/internal/service"

	"github.com/spf13/cobra"
)

var csvPath string

var importCoursesCmd = &cobra.Command{
	Use:   "import-courses",
	Short: "Bulk import courses from a CSV file",
	Long: `Import courses from a CSV export. The file needs a header row with a
"name" column; "faculty", "institute" and "subject_area" columns are
optional and classify the course when all three are present.

Courses that already exist are skipped, so re-running an import after a
partial failure is safe.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(csvPath)
		if err != nil {
			return fmt.Errorf("failed to open CSV file: %w", err)
		}
		defer f.Close()

		db, err := openDatabase()
		if err != nil {
			return err
		}
		defer database.Close(db)

		courseService := service.NewCourseService(
			repository.NewCourseRepository(db),
			repository.NewRatingRepository(db),
			repository.NewProfileRepository(db),
			nil, // view counters are not needed for imports
		)

		report, err := courseService.ImportCSV(cmd.Context(), f)
		if err != nil {
			return fmt.Errorf("import failed: %w", err)
		}

		fmt.Printf("Created: %d\n", report.Created)
		fmt.Printf("Skipped: %d (already existed)\n", report.Skipped)
		for _, e := range report.Errors {
			fmt.Println("Error:", e)
		}
		return nil
	},
}

func init() {
	importCoursesCmd.Flags().StringVar(&csvPath, "csv", "", "path to the CSV file")
	importCoursesCmd.MarkFlagRequired("csv")
	rootCmd.AddCommand(importCoursesCmd)
}
