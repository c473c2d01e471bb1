// Command admin is the terminal counterpart of the dashboard: it gates on
// the shared password, loads the catalog once and drives the editor
// workflow against a running API.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fabriciorsa/Guia-Ligiane/internal/admin"
	"github.com/fabriciorsa/Guia-Ligiane/internal/auth"
	"github.com/fabriciorsa/Guia-Ligiane/internal/catalog"
	"github.com/fabriciorsa/Guia-Ligiane/internal/config"
)

type toastPrinter struct{}

func (toastPrinter) Success(msg string) { fmt.Println("[ok] " + msg) }
func (toastPrinter) Error(msg string)   { fmt.Println("[erro] " + msg) }
func (toastPrinter) Info(msg string)    { fmt.Println("[info] " + msg) }

func main() {
	cfg := config.Load()

	var store auth.Store
	if cfg.AuthStatePath != "" {
		fileStore, err := auth.NewFileStore(cfg.AuthStatePath)
		if err != nil {
			log.Fatalf("auth state: %v", err)
		}
		store = fileStore
	} else {
		store = auth.NewMemStore()
	}

	state, err := auth.NewState(store, cfg.AdminPassword)
	if err != nil {
		log.Fatalf("auth: %v", err)
	}

	in := bufio.NewScanner(os.Stdin)
	in.Buffer(make([]byte, 1024*1024), 1024*1024)

	for !state.Authenticated() {
		fmt.Print("Senha de Acesso: ")
		if !in.Scan() {
			return
		}
		if err := state.Login(strings.TrimSpace(in.Text())); err != nil {
			fmt.Println("Senha incorreta")
		}
	}

	if err := state.Require(func() error { return dashboard(cfg, state, in) }); err != nil {
		log.Fatalf("dashboard: %v", err)
	}
}

func dashboard(cfg config.Config, state *auth.State, in *bufio.Scanner) error {
	ctx := context.Background()

	client := catalog.New(cfg.APIBaseURL)
	if err := client.Load(ctx); err != nil {
		fmt.Printf("Não foi possível carregar os passeios: %v\n", err)
	}

	confirm := func(prompt string) bool {
		fmt.Printf("%s [s/N] ", prompt)
		if !in.Scan() {
			return false
		}
		return strings.HasPrefix(strings.ToLower(strings.TrimSpace(in.Text())), "s")
	}
	wf := admin.NewWorkflow(client, toastPrinter{}, confirm)

	fmt.Println(`Comandos: list, filter <texto>, new, edit <id>, show, set <campo> <valor>,
upload <arquivos...>, cover <i>, rmimg <i>, nextimg, previmg, preview,
save, cancel, delete <id>, reload, logout, quit`)

	for {
		fmt.Print("> ")
		if !in.Scan() {
			return nil
		}
		fields := strings.Fields(in.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "list":
			printTours(wf)
		case "filter":
			wf.SetFilter(strings.Join(fields[1:], " "))
			printTours(wf)
		case "new":
			report(wf.NewTour())
		case "edit":
			id, err := parseID(fields)
			if err != nil {
				fmt.Println(err)
				continue
			}
			report(wf.Edit(id))
		case "show":
			printDraft(wf)
		case "set":
			if len(fields) < 3 {
				fmt.Println("uso: set <campo> <valor>")
				continue
			}
			report(setField(wf, fields[1], strings.Join(fields[2:], " ")))
		case "upload":
			report(upload(wf, fields[1:]))
		case "cover":
			report(withIndex(fields, wf.SetCoverImage))
		case "rmimg":
			report(withIndex(fields, wf.RemoveImage))
		case "nextimg":
			wf.NextPreviewImage()
			fmt.Printf("imagem %d\n", wf.PreviewIndex())
		case "previmg":
			wf.PrevPreviewImage()
			fmt.Printf("imagem %d\n", wf.PreviewIndex())
		case "preview":
			printPreview(wf)
		case "save":
			report(wf.Save(ctx))
		case "cancel":
			wf.Cancel()
		case "delete":
			id, err := parseID(fields)
			if err != nil {
				fmt.Println(err)
				continue
			}
			report(wf.Delete(ctx, id))
		case "reload":
			report(client.Load(ctx))
		case "logout":
			return state.Logout()
		case "quit", "exit":
			return nil
		default:
			fmt.Println("comando desconhecido:", fields[0])
		}
	}
}

func printTours(wf *admin.Workflow) {
	for _, t := range wf.Visible() {
		fmt.Printf("%d\t%s (%s) - R$ %s, %s, %d imagens, nota %.1f (%d avaliações)\n",
			t.ID, t.Title, t.Subtitle, t.Price, t.Duration, len(t.Images), t.Rating, t.Reviews)
	}
}

func printDraft(wf *admin.Workflow) {
	d := wf.Draft()
	if d == nil {
		fmt.Println("nenhum passeio aberto")
		return
	}
	fmt.Printf("id: %d\ntitle: %s\nsubtitle: %s\ndescription: %s\nfullDescription: %s\nduration: %s\ndate: %s\nprice: %s\nmaxPeople: %d\nimages: %d\nfeatures:\n%s\n",
		d.ID, d.Title, d.Subtitle, d.Description, d.FullDescription, d.Duration, d.Date, d.Price, d.MaxPeople, len(d.Images), d.FeaturesText)
}

func printPreview(wf *admin.Workflow) {
	t, ok := wf.Preview()
	if !ok {
		fmt.Println("nenhum passeio aberto")
		return
	}
	cover := "(sem imagem)"
	if len(t.Images) > 0 {
		cover = truncate(t.Images[wf.PreviewIndex()], 60)
	}
	fmt.Printf("%s - %s\n%s\n%s | %s | até %d pessoas\nimagem %d/%d: %s\n",
		t.Title, t.Subtitle, t.FullDescription, t.Duration, t.Date, t.MaxPeople,
		wf.PreviewIndex()+1, len(t.Images), cover)
	for _, f := range t.Features {
		fmt.Println("  • " + f)
	}
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}

func setField(wf *admin.Workflow, field, value string) error {
	d := wf.Draft()
	if d == nil {
		return admin.ErrNotEditing
	}
	switch field {
	case "title":
		d.Title = value
	case "subtitle":
		d.Subtitle = value
	case "description":
		d.Description = value
	case "fulldescription":
		d.FullDescription = value
	case "duration":
		d.Duration = value
	case "date":
		d.Date = value
	case "price":
		d.Price = value
	case "maxpeople":
		n, err := strconv.Atoi(value)
		if err != nil {
			return err
		}
		d.MaxPeople = n
	case "features":
		// items separated by "|", one per included line
		d.FeaturesText = strings.Join(strings.Split(value, "|"), "\n")
	default:
		return fmt.Errorf("campo desconhecido: %s", field)
	}
	return nil
}

func upload(wf *admin.Workflow, paths []string) error {
	files := make([]admin.ImageFile, 0, len(paths))
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return err
		}
		files = append(files, admin.ImageFile{Name: filepath.Base(p), Data: data})
	}
	return wf.AddImages(files)
}

func withIndex(fields []string, fn func(int) error) error {
	if len(fields) < 2 {
		return errors.New("índice requerido")
	}
	i, err := strconv.Atoi(fields[1])
	if err != nil {
		return err
	}
	return fn(i)
}

func parseID(fields []string) (int64, error) {
	if len(fields) < 2 {
		return 0, errors.New("id requerido")
	}
	return strconv.ParseInt(fields[1], 10, 64)
}

func report(err error) {
	if err != nil {
		fmt.Println("erro:", err)
	}
}
