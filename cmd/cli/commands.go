package main

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	pb "github.com/and161185/files-manager/gen/go/filesmanager/v1"
	"github.com/and161185/files-manager/internal/api"
)

func newRootCmd(c *client) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "fm",
		Short:         "files-manager CLI",
		Version:       fmt.Sprintf("%s (%s)", version, buildDate),
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	pf := cmd.PersistentFlags()
	pf.StringVar(&c.addr, "addr", "localhost:5000", "server addr")
	pf.StringVar(&c.caPath, "cacert", "", "CA cert (PEM)")
	pf.BoolVar(&c.skipVerify, "insecure", false, "skip cert verify (dev)")
	pf.BoolVar(&c.plaintext, "plaintext", false, "connect without TLS")
	pf.DurationVar(&c.timeout, "timeout", 30*time.Second, "per-command timeout")

	cmd.AddCommand(
		newRegisterCmd(c),
		newLoginCmd(c),
		newLogoutCmd(c),
		newMeCmd(c),
		newMkdirCmd(c),
		newPutCmd(c),
		newLsCmd(c),
		newStatCmd(c),
		newPublishCmd(c, "publish", true),
		newPublishCmd(c, "unpublish", false),
		newGetCmd(c),
		newStatusCmd(c),
	)
	return cmd
}

func credFlags(cmd *cobra.Command, email, password *string) {
	cmd.Flags().StringVarP(email, "email", "u", "", "account email")
	cmd.Flags().StringVarP(password, "password", "p", "", "password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
}

func newRegisterCmd(c *client) *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cc, cli, err := c.dial(false)
			if err != nil {
				return err
			}
			defer cc.Close()
			ctx, cancel := c.ctx()
			defer cancel()

			u, err := cli.Register(ctx, &pb.RegisterRequest{Email: email, Password: password})
			if err != nil {
				return err
			}
			return printProto(cmd.OutOrStdout(), u)
		},
	}
	credFlags(cmd, &email, &password)
	return cmd
}

func newLoginCmd(c *client) *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and save the session token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cc, cli, err := c.dial(false)
			if err != nil {
				return err
			}
			defer cc.Close()
			ctx, cancel := c.ctx()
			defer cancel()

			resp, err := cli.SignIn(api.WithBasicAuth(ctx, email, password), &pb.SignInRequest{})
			if err != nil {
				return err
			}
			exp := resp.GetExpiresAt().AsTime()
			if err := saveToken(resp.GetToken(), exp); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "signed in, session valid until %s\n", exp.UTC().Format(time.RFC3339))
			return nil
		},
	}
	credFlags(cmd, &email, &password)
	return cmd
}

func newLogoutCmd(c *client) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Revoke the saved session",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			cc, cli, err := c.dial(true)
			if err != nil {
				return err
			}
			defer cc.Close()
			ctx, cancel := c.ctx()
			defer cancel()

			if _, err := cli.SignOut(ctx, &pb.SignOutRequest{}); err != nil {
				return err
			}
			return removeToken()
		},
	}
}

func newMeCmd(c *client) *cobra.Command {
	return &cobra.Command{
		Use:   "me",
		Short: "Show the signed-in account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cc, cli, err := c.dial(true)
			if err != nil {
				return err
			}
			defer cc.Close()
			ctx, cancel := c.ctx()
			defer cancel()

			u, err := cli.Me(ctx, &pb.MeRequest{})
			if err != nil {
				return err
			}
			return printProto(cmd.OutOrStdout(), u)
		},
	}
}

func newMkdirCmd(c *client) *cobra.Command {
	var parent string
	var public bool
	cmd := &cobra.Command{
		Use:   "mkdir NAME",
		Short: "Create a folder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.create(cmd, &pb.CreateNodeRequest{
				Name: args[0], Type: "folder", ParentId: parent, IsPublic: public,
			})
		},
	}
	cmd.Flags().StringVar(&parent, "parent", "", "parent folder id (default root)")
	cmd.Flags().BoolVar(&public, "public", false, "make the folder public")
	return cmd
}

func newPutCmd(c *client) *cobra.Command {
	var parent, name, typ string
	var public bool
	cmd := &cobra.Command{
		Use:   "put FILE",
		Short: "Upload a file or image (FILE may be - for stdin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readAll(args[0])
			if err != nil {
				return err
			}
			if name == "" {
				if args[0] == "-" {
					return fmt.Errorf("--name is required when reading stdin")
				}
				name = filepath.Base(args[0])
			}
			if typ == "" {
				typ = guessType(name)
			}
			return c.create(cmd, &pb.CreateNodeRequest{
				Name: name, Type: typ, ParentId: parent, IsPublic: public, Data: data,
			})
		},
	}
	cmd.Flags().StringVar(&parent, "parent", "", "parent folder id (default root)")
	cmd.Flags().StringVar(&name, "name", "", "node name (default file base name)")
	cmd.Flags().StringVar(&typ, "type", "", "file or image (default by extension)")
	cmd.Flags().BoolVar(&public, "public", false, "make the node public")
	return cmd
}

func (c *client) create(cmd *cobra.Command, req *pb.CreateNodeRequest) error {
	cc, cli, err := c.dial(true)
	if err != nil {
		return err
	}
	defer cc.Close()
	ctx, cancel := c.ctx()
	defer cancel()

	n, err := cli.CreateNode(ctx, req)
	if err != nil {
		return err
	}
	return printProto(cmd.OutOrStdout(), n)
}

// guessType picks "image" for image/* extensions and "file" otherwise.
func guessType(name string) string {
	if strings.HasPrefix(mime.TypeByExtension(strings.ToLower(filepath.Ext(name))), "image/") {
		return "image"
	}
	return "file"
}

func newLsCmd(c *client) *cobra.Command {
	var parent string
	var page int64
	cmd := &cobra.Command{
		Use:   "ls",
		Short: "List nodes under a folder, 20 per page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cc, cli, err := c.dial(true)
			if err != nil {
				return err
			}
			defer cc.Close()
			ctx, cancel := c.ctx()
			defer cancel()

			resp, err := cli.ListNodes(ctx, &pb.ListNodesRequest{ParentId: parent, Page: page})
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for _, n := range resp.GetNodes() {
				vis := "private"
				if n.GetIsPublic() {
					vis = "public"
				}
				fmt.Fprintf(w, "%s\t%-6s\t%-7s\t%s\n", n.GetId(), n.GetType(), vis, n.GetName())
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&parent, "parent", "", "parent folder id (default root)")
	cmd.Flags().Int64Var(&page, "page", 0, "page number, from 0")
	return cmd
}

// haveToken reports whether a usable session is saved.
func haveToken() bool {
	_, err := loadToken()
	return err == nil
}

func newStatCmd(c *client) *cobra.Command {
	return &cobra.Command{
		Use:   "stat ID",
		Short: "Show node metadata",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cc, cli, err := c.dial(haveToken())
			if err != nil {
				return err
			}
			defer cc.Close()
			ctx, cancel := c.ctx()
			defer cancel()

			n, err := cli.GetNode(ctx, &pb.GetNodeRequest{Id: args[0]})
			if err != nil {
				return err
			}
			return printProto(cmd.OutOrStdout(), n)
		},
	}
}

func newPublishCmd(c *client, use string, public bool) *cobra.Command {
	return &cobra.Command{
		Use:   use + " ID",
		Short: "Set node visibility",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cc, cli, err := c.dial(true)
			if err != nil {
				return err
			}
			defer cc.Close()
			ctx, cancel := c.ctx()
			defer cancel()

			n, err := cli.SetVisibility(ctx, &pb.SetVisibilityRequest{Id: args[0], IsPublic: public})
			if err != nil {
				return err
			}
			return printProto(cmd.OutOrStdout(), n)
		},
	}
}

func newGetCmd(c *client) *cobra.Command {
	var size int32
	var out string
	cmd := &cobra.Command{
		Use:   "get ID",
		Short: "Download content, or a thumbnail with --size 500|250|100",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cc, cli, err := c.dial(haveToken())
			if err != nil {
				return err
			}
			defer cc.Close()
			ctx, cancel := c.ctx()
			defer cancel()

			resp, err := cli.GetContent(ctx, &pb.GetContentRequest{Id: args[0], Size: size})
			if err != nil {
				return err
			}
			if out == "" || out == "-" {
				_, err = cmd.OutOrStdout().Write(resp.GetData())
				return err
			}
			return os.WriteFile(out, resp.GetData(), 0o600)
		},
	}
	cmd.Flags().Int32Var(&size, "size", 0, "thumbnail width")
	cmd.Flags().StringVarP(&out, "output", "o", "", "output file (default stdout)")
	return cmd
}

func newStatusCmd(c *client) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show backend status and counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cc, cli, err := c.dial(false)
			if err != nil {
				return err
			}
			defer cc.Close()
			ctx, cancel := c.ctx()
			defer cancel()

			st, err := cli.Status(ctx, &pb.StatusRequest{})
			if err != nil {
				return err
			}
			stats, err := cli.Stats(ctx, &pb.StatsRequest{})
			if err != nil {
				return err
			}
			printJSON(cmd.OutOrStdout(), map[string]any{
				"status": map[string]bool{"db": st.GetDb(), "cache": st.GetCache()},
				"stats":  map[string]int64{"users": stats.GetUsers(), "files": stats.GetFiles()},
			})
			return nil
		},
	}
}
