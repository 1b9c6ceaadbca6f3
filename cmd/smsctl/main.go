// smsctl is a small console frontend over the client stores, covering the
// same flows as the web UI: list, add, edit and delete per entity.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/NEMOzzzzzzzzzz/sms/client"
	"github.com/NEMOzzzzzzzzzz/sms/models"
)

func main() {
	baseURL := flag.String("base-url", envOr("SMS_BASE_URL", "http://localhost:8080"), "server base URL")
	flag.Parse()

	c := client.New(*baseURL)
	residents := client.NewResidentStore(c)
	payments := client.NewPaymentStore(c)
	announcements := client.NewAnnouncementStore(c)

	fmt.Printf("connected to %s\n", *baseURL)
	repl(residents, payments, announcements)
}

func repl(
	residents *client.Store[models.Resident, models.ResidentDraft],
	payments *client.Store[models.Payment, models.PaymentDraft],
	announcements *client.Store[models.Announcement, models.AnnouncementDraft],
) {
	ctx := context.Background()
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print("sms> ")
		if !scanner.Scan() {
			break
		}
		args := strings.Fields(strings.TrimSpace(scanner.Text()))
		if len(args) == 0 {
			continue
		}

		switch args[0] {
		case "help":
			fmt.Println("commands:")
			fmt.Println("  residents list | add <name> <flat> <contact> | delete <id>")
			fmt.Println("  payments list | add <residentID> <amount> <month> <year> | delete <id>")
			fmt.Println("  announcements list | add <title> <content...> | delete <id>")
			fmt.Println("  exit")
		case "residents":
			runResidents(ctx, residents, args[1:])
		case "payments":
			runPayments(ctx, payments, args[1:])
		case "announcements":
			runAnnouncements(ctx, announcements, args[1:])
		case "exit", "quit":
			return
		default:
			fmt.Println("unknown command, try: help")
		}
	}
}

func runResidents(ctx context.Context, store *client.Store[models.Resident, models.ResidentDraft], args []string) {
	switch {
	case len(args) == 0 || args[0] == "list":
		refreshAndPrint(ctx, store)
	case args[0] == "add" && len(args) >= 4:
		draft := models.ResidentDraft{Name: args[1], Flat: args[2], Contact: args[3]}
		submit(ctx, store, draft)
	case args[0] == "delete" && len(args) >= 2:
		remove(ctx, store, args[1])
	default:
		fmt.Println("usage: residents list | add <name> <flat> <contact> | delete <id>")
	}
}

func runPayments(ctx context.Context, store *client.Store[models.Payment, models.PaymentDraft], args []string) {
	switch {
	case len(args) == 0 || args[0] == "list":
		refreshAndPrint(ctx, store)
	case args[0] == "add" && len(args) >= 5:
		residentID, _ := strconv.ParseUint(args[1], 10, 64)
		amount, _ := strconv.ParseFloat(args[2], 64)
		year, _ := strconv.Atoi(args[4])
		draft := client.DefaultPaymentDraft()
		draft.ResidentID = uint(residentID)
		draft.Amount = amount
		draft.Month = args[3]
		draft.Year = year
		submit(ctx, store, draft)
	case args[0] == "delete" && len(args) >= 2:
		remove(ctx, store, args[1])
	default:
		fmt.Println("usage: payments list | add <residentID> <amount> <month> <year> | delete <id>")
	}
}

func runAnnouncements(ctx context.Context, store *client.Store[models.Announcement, models.AnnouncementDraft], args []string) {
	switch {
	case len(args) == 0 || args[0] == "list":
		refreshAndPrint(ctx, store)
	case args[0] == "add" && len(args) >= 3:
		draft := client.DefaultAnnouncementDraft()
		draft.Title = args[1]
		draft.Content = strings.Join(args[2:], " ")
		submit(ctx, store, draft)
	case args[0] == "delete" && len(args) >= 2:
		remove(ctx, store, args[1])
	default:
		fmt.Println("usage: announcements list | add <title> <content...> | delete <id>")
	}
}

func refreshAndPrint[T any, D any](ctx context.Context, store *client.Store[T, D]) {
	if err := store.Refresh(ctx); err != nil {
		fmt.Println("error:", store.LastError())
		if store.NotImplemented() {
			fmt.Println("this feature is not available on the server yet")
			return
		}
	}
	for _, item := range store.Items() {
		b, _ := json.Marshal(item)
		fmt.Println(string(b))
	}
}

func submit[T any, D any](ctx context.Context, store *client.Store[T, D], draft D) {
	if err := store.Submit(ctx, draft); err != nil {
		fmt.Println("error:", store.LastError())
		return
	}
	fmt.Println("ok")
}

func remove[T any, D any](ctx context.Context, store *client.Store[T, D], rawID string) {
	id, err := strconv.ParseUint(rawID, 10, 64)
	if err != nil {
		fmt.Println("id must be a number")
		return
	}
	if err := store.Remove(ctx, uint(id)); err != nil {
		fmt.Println("error:", store.LastError())
		return
	}
	fmt.Println("deleted")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
